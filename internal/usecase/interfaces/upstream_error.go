package interfaces

import "fmt"

// UpstreamError is returned by gateway implementations when the processor or
// messaging provider answers non-2xx or the transport fails.
//
// Body carries the upstream response body verbatim; handlers echo it to the
// caller without adding internal detail.
type UpstreamError struct {
	Service    string
	Operation  string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s %s failed: %s", e.Service, e.Operation, e.Body)
	}
	return fmt.Sprintf("%s %s failed: status=%d body=%s", e.Service, e.Operation, e.StatusCode, e.Body)
}
