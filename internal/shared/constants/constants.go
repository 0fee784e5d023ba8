package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypeCSV  = "text/csv; charset=utf-8"

	// View modes
	ViewModeMember = "member"
	ViewModeAdmin  = "admin"

	// ViewModeKey is the Redis key holding the shared display preference.
	ViewModeKey = "pact:preferences:view_mode"

	// Database table names
	TableMembers      = "members"
	TableCycleRecords = "cycle_records"

	// CycleMonths is the length of a full commitment cycle.
	CycleMonths = 12
)
