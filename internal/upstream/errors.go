package upstream

import (
	"errors"
	"fmt"
)

// BlockedError captures an upstream response that was not JSON, which for
// this upstream means the anti-bot layer served an HTML challenge or an
// empty body instead of data.
type BlockedError struct {
	Endpoint    string
	StatusCode  int
	ContentType string
	Snippet     string
}

func (e *BlockedError) Error() string {
	msg := "upstream response is not JSON"
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsBlockedError attempts to unwrap an error into a BlockedError.
func AsBlockedError(err error) (*BlockedError, bool) {
	var blocked *BlockedError
	if errors.As(err, &blocked) {
		return blocked, true
	}
	return nil, false
}
