package generator

import (
	"encoding/hex"

	"github.com/oklog/ulid/v2"
)

// ULIDGenerator generates ULIDs. IDs made within the same millisecond
// increase monotonically.
type ULIDGenerator struct{}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

func (g *ULIDGenerator) Kind() string {
	return KindULID
}

func (g *ULIDGenerator) Generate(uint32) (string, error) {
	return ulid.Make().String(), nil
}

func (g *ULIDGenerator) GenerateBatch(entityType uint32, count int) ([]string, error) {
	return batch(count, func() (string, error) {
		return g.Generate(entityType)
	})
}

func (g *ULIDGenerator) Validate(id string) error {
	_, err := g.parse(id)
	return err
}

func (g *ULIDGenerator) Parse(id string) (*ParseResult, error) {
	parsed, err := g.parse(id)
	if err != nil {
		return nil, err
	}

	return &ParseResult{
		TimestampMs:   int64(parsed.Time()),
		RandomPayload: hex.EncodeToString(parsed.Entropy()),
	}, nil
}

func (g *ULIDGenerator) parse(id string) (ulid.ULID, error) {
	if len(id) != ulid.EncodedSize {
		return ulid.ULID{}, invalid("expected length %d, got %d", ulid.EncodedSize, len(id))
	}
	parsed, err := ulid.ParseStrict(id)
	if err != nil {
		return ulid.ULID{}, invalid("invalid ULID format: %v", err)
	}
	return parsed, nil
}
