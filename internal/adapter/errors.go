package adapter

import "errors"

var (
	ErrUnauthorized       = errors.New("ai gateway rejected the api key")
	ErrRateLimited        = errors.New("ai gateway rate limit exceeded")
	ErrGatewayUnavailable = errors.New("ai gateway unavailable")
)
