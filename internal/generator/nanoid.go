package generator

import (
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	DefaultNanoIDSize     = 21
	DefaultNanoIDAlphabet = "_-0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NanoIDGenerator generates NanoID identifiers with configurable size and alphabet.
type NanoIDGenerator struct {
	size     int
	alphabet string
}

// NewNanoIDGenerator creates a new NanoIDGenerator.
// size must be between 1 and 256. alphabet must have between 2 and 255
// characters.
func NewNanoIDGenerator(size int, alphabet string) (*NanoIDGenerator, error) {
	if size < 1 || size > 256 {
		return nil, fmt.Errorf("nanoid size must be between 1 and 256, got %d", size)
	}
	if n := len([]rune(alphabet)); n < 2 || n > 255 {
		return nil, fmt.Errorf("nanoid alphabet must have between 2 and 255 characters, got %d", n)
	}
	return &NanoIDGenerator{
		size:     size,
		alphabet: alphabet,
	}, nil
}

func (g *NanoIDGenerator) Kind() string {
	return KindNanoID
}

func (g *NanoIDGenerator) Generate(uint32) (string, error) {
	id, err := gonanoid.Generate(g.alphabet, g.size)
	if err != nil {
		return "", fmt.Errorf("failed to generate NanoID: %w", err)
	}
	return id, nil
}

func (g *NanoIDGenerator) GenerateBatch(entityType uint32, count int) ([]string, error) {
	return batch(count, func() (string, error) {
		return g.Generate(entityType)
	})
}

func (g *NanoIDGenerator) Validate(id string) error {
	if n := len([]rune(id)); n != g.size {
		return invalid("expected length %d, got %d", g.size, n)
	}
	for _, c := range id {
		if !strings.ContainsRune(g.alphabet, c) {
			return invalid("character %q not in alphabet", c)
		}
	}
	return nil
}

func (g *NanoIDGenerator) Parse(id string) (*ParseResult, error) {
	if err := g.Validate(id); err != nil {
		return nil, err
	}

	return &ParseResult{
		IDLength: int32(len([]rune(id))),
		Alphabet: g.alphabet,
	}, nil
}
