package identity

import "fmt"

// DownloadError represents a failure to materialize a logo locally.
type DownloadError struct {
	URL     string
	Message string
	Cause   error
}

func (e *DownloadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("logo download error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("logo download error for %s: %s", e.URL, e.Message)
}

func (e *DownloadError) Unwrap() error {
	return e.Cause
}
