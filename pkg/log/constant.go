package log

const (
	// ModeProduction enables the production encoder preset.
	ModeProduction = "production"
	// ModeDevelopment enables the development encoder preset.
	ModeDevelopment = "development"

	// EncodingJSON writes one JSON object per line.
	EncodingJSON = "json"
	// EncodingConsole writes human readable lines.
	EncodingConsole = "console"

	traceIDField = "trace_id"
)
