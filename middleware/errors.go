package middleware

import "errors"

var (
	errMissingHeader = errors.New("missing Authorization header")
	errInvalidHeader = errors.New("invalid Authorization header")
	errInvalidToken  = errors.New("invalid token")
)
