package logging

// LogEntry represents a structured log record with fields particularly
// relevant to evolution runs.
type LogEntry struct {
	// Standard fields
	Time     int64
	Severity Severity
	Message  string
	File     string
	Line     int
	Function string

	// Evolution-specific fields
	RunID      string // Identifier of the evolution run emitting the entry
	Generation int    // Generation counter at emit time, -1 when unknown

	// General structured data
	Fields map[string]interface{}
}
