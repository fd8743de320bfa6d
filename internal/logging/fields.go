package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldSeason     = "season"
	FieldSeasonType = "season_type"
	FieldUpstream   = "upstream"
	FieldDurationMS = "duration_ms"
)
