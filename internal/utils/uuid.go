package utils

import "github.com/google/uuid"

// UUIDGenerator produces the opaque identifiers used for accounts and
// notes. UUIDv7 keeps ids time-ordered, which preserves creation order
// even if collections are ever re-sorted by id.
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
