package types

import "time"

// LogEntry is the in-flight form of one request/response audit record. It is
// built from the fiber context after the response is written and carried over
// the async logger's channel until the worker persists it.
type LogEntry struct {
	Method          string
	URL             string
	RequestBody     string
	ResponseBody    string
	RequestHeaders  string
	ResponseHeaders string
	StatusCode      int
	CreatedAt       time.Time
}
