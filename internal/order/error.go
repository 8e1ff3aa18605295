package order

import "errors"

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrFailedCommitOrder = errors.New("failed to commit orders")
)
