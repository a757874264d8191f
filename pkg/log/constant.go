package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "debug"

	EncodingConsole = "console"
	EncodingJSON    = "json"

	// RequestIDKey is the field name used to correlate lines of one API call.
	RequestIDKey = "request_id"
)

type ctxKey struct{}
