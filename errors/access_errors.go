// errors/access_errors.go
package errors

import "errors"

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrForbidden    = errors.New("forbidden: admin access required")

	ErrInvalidRole = errors.New("invalid role")
)
