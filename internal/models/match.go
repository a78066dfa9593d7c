package models

import "time"

// ParticipantKind tags whether a participant entry carries the full stat
// block or only identity fields. It is set once when the record is
// normalized and never re-derived from field presence.
type ParticipantKind string

const (
	ParticipantFull ParticipantKind = "full"
	ParticipantStub ParticipantKind = "stub"
)

// Participant is one player slot in a match. Stat fields are only
// meaningful when Kind == ParticipantFull.
type Participant struct {
	Kind ParticipantKind `json:"kind"`

	PUUID      string `json:"puuid"`
	RiotIDName string `json:"riot_id_name"`

	ChampionID   int    `json:"champion_id,omitempty"`
	ChampionName string `json:"champion_name,omitempty"`
	TeamID       int    `json:"team_id,omitempty"`
	TeamPosition string `json:"team_position,omitempty"` // TOP, JUNGLE, MIDDLE, BOTTOM, UTILITY

	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`

	DoubleKills int `json:"double_kills"`
	TripleKills int `json:"triple_kills"`
	QuadraKills int `json:"quadra_kills"`
	PentaKills  int `json:"penta_kills"`

	TotalDamageToChampions int `json:"total_damage_to_champions"`
	DamageToObjectives     int `json:"damage_to_objectives"`
	GoldEarned             int `json:"gold_earned"`

	VisionScore        int `json:"vision_score"`
	WardsPlaced        int `json:"wards_placed"`
	WardsKilled        int `json:"wards_killed"`
	ControlWardsPlaced int `json:"control_wards_placed"`

	TotalMinionsKilled   int `json:"total_minions_killed"`
	NeutralMinionsKilled int `json:"neutral_minions_killed"`

	TurretKills int `json:"turret_kills"`
	DragonKills int `json:"dragon_kills"`
	BaronKills  int `json:"baron_kills"`

	LongestTimeSpentLiving int `json:"longest_time_spent_living"` // seconds
	TotalTimeSpentDead     int `json:"total_time_spent_dead"`     // seconds, 0 when upstream omits it

	Items       [7]int `json:"items"`
	Summoner1ID int    `json:"summoner1_id"`
	Summoner2ID int    `json:"summoner2_id"`

	Win bool `json:"win"`
}

// KDA returns (kills+assists)/deaths, or kills+assists when the
// participant never died.
func (p *Participant) KDA() float64 {
	if p.Deaths > 0 {
		return float64(p.Kills+p.Assists) / float64(p.Deaths)
	}
	return float64(p.Kills + p.Assists)
}

// CS returns total creep score (lane minions plus neutral monsters).
func (p *Participant) CS() int {
	return p.TotalMinionsKilled + p.NeutralMinionsKilled
}

// IsLaner reports whether the participant played a solo or duo lane,
// as opposed to jungle/support roaming roles.
func (p *Participant) IsLaner() bool {
	switch p.TeamPosition {
	case "TOP", "MIDDLE", "BOTTOM":
		return true
	}
	return false
}

// MatchRecord is the normalized form of one historical match. Records are
// immutable once created: they are written to the record store exactly
// once and evicted only by TTL.
type MatchRecord struct {
	MatchID      string        `json:"match_id"`
	GameCreation time.Time     `json:"game_creation"`
	GameDuration int           `json:"game_duration"` // seconds
	GameMode     string        `json:"game_mode"`     // CLASSIC, ARAM, ...
	GameType     string        `json:"game_type"`
	QueueID      int           `json:"queue_id"`
	Participants []Participant `json:"participants"`
}

// DurationMinutes returns the game length in minutes.
func (m *MatchRecord) DurationMinutes() float64 {
	return float64(m.GameDuration) / 60.0
}

// ParticipantByPUUID returns the participant entry for the given player,
// or nil when the player was not in the match.
func (m *MatchRecord) ParticipantByPUUID(puuid string) *Participant {
	for i := range m.Participants {
		if m.Participants[i].PUUID == puuid {
			return &m.Participants[i]
		}
	}
	return nil
}
