package board

import "fmt"

// CredentialError means the credentials file could not be read or parsed.
// It is fatal and occurs before any network call.
type CredentialError struct {
	Path string
	Err  error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("loading credentials from %s: %v", e.Path, e.Err)
}

func (e *CredentialError) Unwrap() error { return e.Err }

// FetchError means the corpus could not be fetched from the board. It is
// fatal for the run: analysis cannot proceed without data.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DetailFetchError means enrichment of a single task failed. It is non-fatal:
// the task is skipped and the run continues.
type DetailFetchError struct {
	TaskID string
	Err    error
}

func (e *DetailFetchError) Error() string {
	return fmt.Sprintf("fetching details for task %s: %v", e.TaskID, e.Err)
}

func (e *DetailFetchError) Unwrap() error { return e.Err }
