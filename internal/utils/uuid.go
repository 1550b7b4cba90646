package utils

import (
	"strings"

	"github.com/google/uuid"
)

const tempSuffix = ".part"

// UUIDGenerator produces time-ordered identifiers. It is used to name
// temporary download files so concurrent writers never collide.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random v4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// TempName returns a hidden temporary file name derived from base.
func (g *UUIDGenerator) TempName(base string) string {
	return "." + base + "." + g.Generate() + tempSuffix
}

// IsTempName reports whether name was produced by TempName for base.
func (g *UUIDGenerator) IsTempName(base, name string) bool {
	prefix := "." + base + "."
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, tempSuffix) {
		return false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(name, prefix), tempSuffix)
	_, err := uuid.Parse(id)
	return err == nil && len(id) == 36
}
