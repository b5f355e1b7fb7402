package utils

import "github.com/google/uuid"

// UUIDGenerator produces the opaque per-request identifiers used as trace
// ids. Identifiers are time-ordered UUIDv7 values so log storage sorts them
// roughly chronologically; if v7 generation fails (entropy exhaustion) a
// random v4 is returned instead, so Generate never fails.
type UUIDGenerator struct {
}

// NewUUIDGenerator returns a ready-to-use generator. The zero value is also
// usable; the constructor exists for symmetry with the other components.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new globally-unique identifier string.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
