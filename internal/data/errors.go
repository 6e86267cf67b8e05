package data

import "fmt"

// MalformedDataError reports a price dump that could be read but not
// understood: missing "data" array, wrong field types, or impossible
// timestamps. It is terminal for the current run; callers surface it and do
// not retry.
type MalformedDataError struct {
	Path   string
	Reason string
}

func (e *MalformedDataError) Error() string {
	return fmt.Sprintf("malformed price data in %s: %s", e.Path, e.Reason)
}
