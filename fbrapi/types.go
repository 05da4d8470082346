package fbrapi

// Row is a single flattened record. Upstream responses carry fields the
// client does not model, so rows keep every key the server sent.
type Row map[string]any

// KeyResponse is the body returned by the key-issuance endpoint.
type KeyResponse struct {
	APIKey string `json:"api_key"`
}

// LeagueBucket groups the leagues of one league type.
type LeagueBucket struct {
	LeagueType string `json:"league_type"`
	Leagues    []Row  `json:"leagues"`
}

// LeaguesPayload is the response body of the /leagues endpoint.
type LeaguesPayload struct {
	Data []LeagueBucket `json:"data"`
}

// SeasonBucket groups the seasons of one league. The season list rides on
// the season_id field upstream.
type SeasonBucket struct {
	LeagueID int   `json:"league_id"`
	Seasons  []Row `json:"season_id"`
}

// SeasonsPayload is the response body of the /league-seasons endpoint.
type SeasonsPayload struct {
	Data []SeasonBucket `json:"data"`
}
