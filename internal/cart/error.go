package cart

import "errors"

var (
	ErrFailedResolveCart = errors.New("failed to resolve cart items")
)
