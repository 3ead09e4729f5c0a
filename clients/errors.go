package clients

import (
	"errors"
	"fmt"
)

// APIError is returned for upstream responses outside the 2xx range
type APIError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

// UpstreamDetail returns the upstream response body when err carries one, otherwise err.Error()
func UpstreamDetail(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Body != "" {
		return apiErr.Body
	}
	return err.Error()
}
