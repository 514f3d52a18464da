package domain

import "errors"

var (
	// ErrCardNotFound is returned when the upstream API has no card for an id
	ErrCardNotFound = errors.New("card not found")

	// ErrCatalogNotFound is returned when no catalog has been stored yet
	ErrCatalogNotFound = errors.New("catalog not found")

	// ErrInvalidCatalog is returned when a catalog fails validation before a write
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrUpstreamFailure is returned when the card data API request fails
	ErrUpstreamFailure = errors.New("card API request failed")

	// ErrCircuitOpen is returned while the upstream circuit breaker refuses calls
	ErrCircuitOpen = errors.New("card API circuit open")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when cache service is unavailable
	ErrCacheUnavailable = errors.New("cache service unavailable")

	// ErrBenefitDropped is returned when a benefit yields no display summary
	ErrBenefitDropped = errors.New("benefit produced no summary")
)
