package models

// LeagueEntry is a player's standing in one ranked queue, as reported by
// the upstream league endpoint. It is an input to the ranked scene, not
// something this service computes.
type LeagueEntry struct {
	QueueType    string `json:"queue_type"` // RANKED_SOLO_5x5, RANKED_FLEX_SR
	Tier         string `json:"tier"`       // IRON .. CHALLENGER
	Rank         string `json:"rank"`       // I, II, III, IV
	LeaguePoints int    `json:"league_points"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}

// TierLadder orders tiers from lowest to highest.
var TierLadder = []string{
	"IRON", "BRONZE", "SILVER", "GOLD", "PLATINUM",
	"EMERALD", "DIAMOND", "MASTER", "GRANDMASTER", "CHALLENGER",
}

// DivisionLadder orders divisions within a tier from lowest to highest.
var DivisionLadder = []string{"IV", "III", "II", "I"}

// NextMilestone returns the label of the next promotion target for a
// tier/division pair. Apex tiers (MASTER and above) have no division
// ladder; the milestone is simply more LP.
func NextMilestone(tier, division string) string {
	tierIdx := -1
	for i, t := range TierLadder {
		if t == tier {
			tierIdx = i
			break
		}
	}
	if tierIdx == -1 {
		return ""
	}
	if tier == "MASTER" || tier == "GRANDMASTER" || tier == "CHALLENGER" {
		return tier + " +100 LP"
	}
	for i, d := range DivisionLadder {
		if d == division {
			if i == len(DivisionLadder)-1 {
				// Division I promotes into the next tier.
				return TierLadder[tierIdx+1] + " IV"
			}
			return tier + " " + DivisionLadder[i+1]
		}
	}
	return ""
}
