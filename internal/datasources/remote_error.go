package datasources

import "fmt"

// RemoteError is returned for any failure of a call to the remote review service:
// connectivity, authentication, rejection by the service or an unusable response.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote review service: %s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
