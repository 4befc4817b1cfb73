package sheet

import (
	"errors"
	"fmt"
)

// NetworkError reports a transport failure or a non-success HTTP status
// while fetching the published sheet
type NetworkError struct {
	StatusCode int   // 0 when the transport call itself failed
	Err        error // underlying cause, nil on status failures
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("sheet fetch failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("sheet fetch failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// FormatError reports a response body that is recognizably an HTML
// document rather than CSV. Misconfigured publish-to-web links serve a
// login or error page, often with a 200 status.
type FormatError struct {
	Preview string // leading bytes of the offending body
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("sheet returned HTML instead of CSV (body starts %q)", e.Preview)
}

// IsNetworkError returns true if err is or wraps a NetworkError
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsFormatError returns true if err is or wraps a FormatError
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
