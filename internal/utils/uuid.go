// Package utils holds small shared helpers with no domain logic of their own.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for newly created notes. It prefers
// time-ordered UUIDv7 so that freshly created notes sort naturally by ID, and
// falls back to random UUIDv4 if v7 generation fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
