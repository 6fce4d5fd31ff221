package model

import "fmt"

// NotificationFailure covers every way a trigger call can fail: transport,
// TLS, serialization and non-2xx responses alike.
type NotificationFailure struct {
	Target RepositorySlug
	Err    error
}

func (f *NotificationFailure) Error() string {
	return fmt.Sprintf("failed to trigger build at %v: %v", f.Target, f.Err)
}

func (f *NotificationFailure) Unwrap() error {
	return f.Err
}
