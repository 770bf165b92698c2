package service

import (
	"context"

	"github.com/weiawesome/snowflake128/internal/generator"
)

// IDService defines the ID operations shared by the gRPC and HTTP
// transports. An empty kind means snowflake. An entity is a configured
// entity type name, a decimal tag in [0, 255], or empty for tag 0.
type IDService interface {
	Generate(ctx context.Context, kind, entity string) (string, error)
	GenerateBatch(ctx context.Context, kind, entity string, count int) ([]string, error)
	// Stream generates count IDs and hands them to send one at a time. It
	// stops early if ctx is done or send fails.
	Stream(ctx context.Context, kind, entity string, count int, send func(id string) error) error
	// Validate reports whether id is a well-formed ID of kind, with the
	// reason when it is not. The error is non-nil only for an unknown kind.
	Validate(ctx context.Context, kind, id string) (valid bool, reason string, err error)
	Parse(ctx context.Context, kind, id string) (*ParsedID, error)
	Kinds() []string
}

// ParsedID is a parse result with the entity type name resolved.
type ParsedID struct {
	generator.ParseResult
	Kind       string
	EntityName string
}
