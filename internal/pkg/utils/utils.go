// Package utils contains small generic helpers shared across services.
package utils

// Ptr returns a pointer to v. Useful for optional fields in test fixtures
// and update payloads.
func Ptr[T any](v T) *T {
	return &v
}
