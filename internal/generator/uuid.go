package generator

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// UUIDGenerator generates time-ordered UUID v7 IDs.
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUIDGenerator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Kind() string {
	return KindUUID
}

func (g *UUIDGenerator) Generate(uint32) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate UUID: %w", err)
	}
	return id.String(), nil
}

func (g *UUIDGenerator) GenerateBatch(entityType uint32, count int) ([]string, error) {
	return batch(count, func() (string, error) {
		return g.Generate(entityType)
	})
}

func (g *UUIDGenerator) Validate(id string) error {
	_, err := g.parse(id)
	return err
}

func (g *UUIDGenerator) Parse(id string) (*ParseResult, error) {
	parsed, err := g.parse(id)
	if err != nil {
		return nil, err
	}

	return &ParseResult{
		TimestampMs: unixMilliV7(parsed),
		UUIDVersion: int32(parsed.Version()),
		UUIDVariant: variantName(parsed.Variant()),
	}, nil
}

func (g *UUIDGenerator) parse(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, invalid("invalid UUID format: %v", err)
	}
	if parsed.Version() != 7 {
		return uuid.Nil, invalid("expected UUID v7, got v%d", parsed.Version())
	}
	if parsed.Variant() != uuid.RFC4122 {
		return uuid.Nil, invalid("expected RFC4122 variant, got %s", variantName(parsed.Variant()))
	}
	return parsed, nil
}

// unixMilliV7 reads the 48-bit big-endian millisecond timestamp that starts
// a version 7 UUID.
func unixMilliV7(u uuid.UUID) int64 {
	var b [8]byte
	copy(b[2:], u[:6])
	return int64(binary.BigEndian.Uint64(b[:]))
}

func variantName(v uuid.Variant) string {
	switch v {
	case uuid.RFC4122:
		return "RFC4122"
	case uuid.Reserved:
		return "Reserved"
	case uuid.Microsoft:
		return "Microsoft"
	case uuid.Future:
		return "Future"
	default:
		return "Unknown"
	}
}
