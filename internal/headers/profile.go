package headers

import "net/http"

// Profile is the set of request headers attached to every upstream call.
// The defaults mimic a desktop Chrome session browsing the upstream's own
// site, which is what its anti-bot layer expects to see.
type Profile map[string]string

// Default returns the built-in browser profile.
func Default() Profile {
	return Profile{
		"User-Agent":         "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
		"Accept":             "application/json, text/plain, */*",
		"Accept-Language":    "en-US,en;q=0.9",
		"Referer":            "https://www.nba.com/",
		"Origin":             "https://www.nba.com",
		"x-nba-stats-origin": "stats",
		"x-nba-stats-token":  "true",
		"Sec-Fetch-Dest":     "empty",
		"Sec-Fetch-Mode":     "cors",
		"Sec-Fetch-Site":     "same-site",
		"Connection":         "keep-alive",
	}
}

// Apply sets every profile header on h, replacing existing values.
func (p Profile) Apply(h http.Header) {
	for key, value := range p {
		h.Set(key, value)
	}
}

// Clone returns a copy of the profile.
func (p Profile) Clone() Profile {
	out := make(Profile, len(p))
	for key, value := range p {
		out[key] = value
	}
	return out
}
