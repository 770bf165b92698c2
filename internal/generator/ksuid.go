package generator

import (
	"encoding/hex"
	"fmt"

	"github.com/segmentio/ksuid"
)

// encodedKSUIDLen is the length of a base62 KSUID string.
const encodedKSUIDLen = 27

// KSUIDGenerator generates KSUID (K-Sortable Unique IDentifier) IDs.
type KSUIDGenerator struct{}

// NewKSUIDGenerator creates a new KSUIDGenerator.
func NewKSUIDGenerator() *KSUIDGenerator {
	return &KSUIDGenerator{}
}

func (g *KSUIDGenerator) Kind() string {
	return KindKSUID
}

func (g *KSUIDGenerator) Generate(uint32) (string, error) {
	id, err := ksuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate KSUID: %w", err)
	}
	return id.String(), nil
}

func (g *KSUIDGenerator) GenerateBatch(entityType uint32, count int) ([]string, error) {
	return batch(count, func() (string, error) {
		return g.Generate(entityType)
	})
}

func (g *KSUIDGenerator) Validate(id string) error {
	_, err := g.parse(id)
	return err
}

func (g *KSUIDGenerator) Parse(id string) (*ParseResult, error) {
	parsed, err := g.parse(id)
	if err != nil {
		return nil, err
	}

	return &ParseResult{
		TimestampMs:   parsed.Time().UnixMilli(),
		RandomPayload: hex.EncodeToString(parsed.Payload()),
	}, nil
}

func (g *KSUIDGenerator) parse(id string) (ksuid.KSUID, error) {
	if len(id) != encodedKSUIDLen {
		return ksuid.Nil, invalid("expected length %d, got %d", encodedKSUIDLen, len(id))
	}
	parsed, err := ksuid.Parse(id)
	if err != nil {
		return ksuid.Nil, invalid("invalid KSUID format: %v", err)
	}
	return parsed, nil
}
