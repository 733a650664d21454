// Package service holds the owner-scoped resource logic behind the HTTP
// handlers. Every read and write filters by the requesting user's id.
package service

import "errors"

// ErrInvalidInput wraps validation failures on client supplied fields.
var ErrInvalidInput = errors.New("invalid input")
