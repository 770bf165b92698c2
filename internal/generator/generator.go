package generator

import (
	"errors"
	"fmt"
	"sort"
)

// Kind names.
const (
	KindSnowflake = "snowflake"
	KindUUID      = "uuid"
	KindULID      = "ulid"
	KindKSUID     = "ksuid"
	KindNanoID    = "nanoid"
	KindCUID2     = "cuid2"
)

// ErrInvalidID is wrapped by every Validate and Parse failure.
var ErrInvalidID = errors.New("invalid id")

// Generator defines the interface for ID generation, validation, and parsing.
// Only snowflake IDs carry the entity type; other kinds ignore it.
type Generator interface {
	Kind() string
	Generate(entityType uint32) (string, error)
	GenerateBatch(entityType uint32, count int) ([]string, error)
	Validate(id string) error
	Parse(id string) (*ParseResult, error)
}

// ParseResult holds the parsed fields from an ID.
type ParseResult struct {
	TimestampMs   int64  // snowflake/uuid/ulid/ksuid: absolute unix ms
	EntityType    uint32 // snowflake only
	Counter       uint32 // snowflake only
	APIVersion    uint32 // snowflake only
	NodeID        uint32 // snowflake only
	UUIDVersion   int32  // uuid only
	UUIDVariant   string // uuid only
	RandomPayload string // ulid/ksuid: hex-encoded random bytes
	IDLength      int32  // nanoid/cuid2: ID string length
	Alphabet      string // nanoid: character set used
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidID, fmt.Sprintf(format, args...))
}

// batch calls gen count times.
func batch(count int, gen func() (string, error)) ([]string, error) {
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id, err := gen()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Registry looks generators up by kind.
type Registry struct {
	gens map[string]Generator
}

// NewRegistry indexes the given generators. Kinds must be unique.
func NewRegistry(gens ...Generator) (*Registry, error) {
	r := &Registry{gens: make(map[string]Generator, len(gens))}
	for _, g := range gens {
		if _, dup := r.gens[g.Kind()]; dup {
			return nil, fmt.Errorf("duplicate generator kind %q", g.Kind())
		}
		r.gens[g.Kind()] = g
	}
	return r, nil
}

// Get returns the generator for kind.
func (r *Registry) Get(kind string) (Generator, bool) {
	g, ok := r.gens[kind]
	return g, ok
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.gens))
	for k := range r.gens {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
