// errors/store_errors.go
package errors

import "errors"

var (
	ErrResourceNotFound     = errors.New("resource not found")
	ErrDatabaseOperation    = errors.New("database operation failed")
	ErrIdentityDeleteFailed = errors.New("failed to delete user identity")
	ErrAuditWrite           = errors.New("audit write failed")
)
