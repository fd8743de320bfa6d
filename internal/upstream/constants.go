package upstream

import "time"

const (
	defaultBaseURL     = "https://stats.nba.com/stats"
	defaultSiteURL     = "https://www.nba.com/"
	defaultSeasonType  = "Regular Season"
	defaultHTTPTimeout = 10 * time.Second

	statsEndpoint = "leaguedashplayerstats"

	// Upstream payloads for a full season run a few megabytes; anything
	// larger than this is not a stats response.
	maxBodyBytes = 16 << 20
	// Diagnostic snippet bound for blocked/HTML responses.
	snippetBytes = 512
)

// Parameter block the stats endpoint requires even when the filters are unused.
// Omitting any of these yields a 400 from the real upstream.
var fixedParams = map[string]string{
	"LeagueID":       "00",
	"PerMode":        "PerGame",
	"MeasureType":    "Base",
	"PlusMinus":      "N",
	"PaceAdjust":     "N",
	"Rank":           "N",
	"Outcome":        "",
	"Location":       "",
	"Month":          "0",
	"SeasonSegment":  "",
	"DateFrom":       "",
	"DateTo":         "",
	"OpponentTeamID": "0",
	"VsConference":   "",
	"VsDivision":     "",
	"GameSegment":    "",
	"Period":         "0",
	"LastNGames":     "0",
}
