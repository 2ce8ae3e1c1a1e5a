package marketstore

import "errors"

var (
	// ErrMarketNotFound is returned when the market does not exist.
	ErrMarketNotFound = errors.New("market not found")
)
