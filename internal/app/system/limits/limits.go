// internal/app/system/limits/limits.go
package limits

// Request body size limits. These caps keep oversized JSON bodies from
// exhausting memory; handlers apply them with http.MaxBytesReader.
const (
	// MaxJSONBodySize bounds JSON request bodies (need create/update,
	// volunteer requests, token mint).
	MaxJSONBodySize = 1 << 20 // 1 MB
)
