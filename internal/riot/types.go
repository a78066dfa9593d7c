package riot

// MatchResponse is the raw shape of /lol/match/v5/matches/{matchId}.
type MatchResponse struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"` // PUUIDs
}

type MatchInfo struct {
	GameCreation int64              `json:"gameCreation"` // epoch millis
	GameDuration int                `json:"gameDuration"` // seconds
	GameMode     string             `json:"gameMode"`
	GameType     string             `json:"gameType"`
	GameVersion  string             `json:"gameVersion"`
	QueueID      int                `json:"queueId"`
	Participants []ParticipantData  `json:"participants"`
}

type ParticipantData struct {
	PUUID          string `json:"puuid"`
	RiotIDGameName string `json:"riotIdGameName"`
	SummonerName   string `json:"summonerName"`

	ChampionID   int    `json:"championId"`
	ChampionName string `json:"championName"`
	TeamID       int    `json:"teamId"`
	TeamPosition string `json:"teamPosition"`

	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`

	DoubleKills int `json:"doubleKills"`
	TripleKills int `json:"tripleKills"`
	QuadraKills int `json:"quadraKills"`
	PentaKills  int `json:"pentaKills"`

	TotalDamageDealtToChampions int `json:"totalDamageDealtToChampions"`
	DamageDealtToObjectives     int `json:"damageDealtToObjectives"`
	GoldEarned                  int `json:"goldEarned"`

	VisionScore             int `json:"visionScore"`
	WardsPlaced             int `json:"wardsPlaced"`
	WardsKilled             int `json:"wardsKilled"`
	VisionWardsBoughtInGame int `json:"visionWardsBoughtInGame"`

	TotalMinionsKilled   int `json:"totalMinionsKilled"`
	NeutralMinionsKilled int `json:"neutralMinionsKilled"`

	TurretKills int `json:"turretKills"`
	DragonKills int `json:"dragonKills"`
	BaronKills  int `json:"baronKills"`

	LongestTimeSpentLiving int `json:"longestTimeSpentLiving"`
	TotalTimeSpentDead     int `json:"totalTimeSpentDead"`

	Item0 int `json:"item0"`
	Item1 int `json:"item1"`
	Item2 int `json:"item2"`
	Item3 int `json:"item3"`
	Item4 int `json:"item4"`
	Item5 int `json:"item5"`
	Item6 int `json:"item6"`

	Summoner1ID int `json:"summoner1Id"`
	Summoner2ID int `json:"summoner2Id"`

	Win bool `json:"win"`
}

// LeagueEntryResponse is the raw shape of one entry from
// /lol/league/v4/entries/by-puuid.
type LeagueEntryResponse struct {
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}
