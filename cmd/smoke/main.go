package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Smoke client: posts one compute-all request against a running server
// and prints what comes back. Useful when poking at a local instance
// without wiring up a frontend.

type insightRequest struct {
	PUUID    string   `json:"puuid"`
	MatchIDs []string `json:"match_ids"`
	Season   int      `json:"season"`
}

func main() {
	apiURL := flag.String("url", "http://localhost:8080/api/v1/insights", "Compute endpoint")
	puuid := flag.String("puuid", "", "Player PUUID (required)")
	matchIDs := flag.String("matches", "", "Comma-separated match ids, newest first")
	season := flag.Int("season", time.Now().UTC().Year(), "Season year")
	flag.Parse()

	if *puuid == "" {
		log.Fatal("--puuid is required")
	}

	req := insightRequest{
		PUUID:  *puuid,
		Season: *season,
	}
	for _, id := range strings.Split(*matchIDs, ",") {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			req.MatchIDs = append(req.MatchIDs, trimmed)
		}
	}

	payload, err := json.Marshal(req)
	if err != nil {
		log.Fatalf("Failed to marshal JSON: %v", err)
	}

	httpReq, err := http.NewRequest("POST", *apiURL, bytes.NewBuffer(payload))
	if err != nil {
		log.Fatalf("Failed to create request: %v", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 120 * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		log.Fatalf("Failed to send request: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	fmt.Printf("Status: %s\n", resp.Status)

	var pretty bytes.Buffer
	if json.Indent(&pretty, body, "", "  ") == nil {
		fmt.Println(pretty.String())
	} else {
		fmt.Println(string(body))
	}
}
