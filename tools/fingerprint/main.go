package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/riftglance/insights-api/internal/cache"
	"github.com/riftglance/insights-api/internal/logic"
)

// Prints the insight cache key for a (puuid, scene, season) triple, for
// inspecting or clearing specific entries in Redis by hand.
func main() {
	puuid := flag.String("puuid", "", "Player PUUID (required)")
	scene := flag.String("scene", "", "Scene id (required)")
	season := flag.Int("season", 0, "Season year (required)")
	flag.Parse()

	if *puuid == "" || *scene == "" || *season == 0 {
		log.Fatal("usage: fingerprint --puuid=... --scene=year-in-motion --season=2025")
	}

	fp := logic.Fingerprint(*puuid, *scene, *season)
	fmt.Println(cache.InsightKey(fp))
}
