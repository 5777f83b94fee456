package client

import "fmt"

// ServiceError is the single error kind returned by every failing
// operation. It carries the underlying service diagnostic verbatim,
// prefixed only with the operation that failed.
type ServiceError struct {
	Op  string // operation, e.g. "get lists"
	Err error  // the service's error, rendered as-is
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// NotFoundError reports a lookup the facade itself performed and could
// not satisfy. The only producer is AddFavouriteToShoppingList.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// wrapErr wraps a service failure in a ServiceError. Returns nil when
// err is nil so call sites can wrap unconditionally.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &ServiceError{Op: op, Err: err}
}
