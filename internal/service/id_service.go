package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/weiawesome/snowflake128/internal/generator"
	pkglog "github.com/weiawesome/snowflake128/pkg/log"
	"github.com/weiawesome/snowflake128/pkg/snowflake"
)

// MaxBatchSize bounds GenerateBatch and Stream.
const MaxBatchSize = 1000

var (
	ErrUnknownKind   = errors.New("unknown id kind")
	ErrUnknownEntity = errors.New("unknown entity type")
	ErrInvalidCount  = errors.New("count out of range")
	// ErrUnavailable is returned by the generating operations once the
	// readiness check fails, e.g. after the node ID lease is lost.
	ErrUnavailable = errors.New("id generation unavailable")
)

// idServiceImpl implements IDService interface.
type idServiceImpl struct {
	registry *generator.Registry
	tags     map[string]uint32
	names    map[uint32]string
	ready    func() error
}

// Option configures the ID service.
type Option func(*idServiceImpl)

// WithReadiness gates Generate, GenerateBatch and Stream on ready. While it
// returns an error those operations fail with ErrUnavailable. Validate and
// Parse are not gated.
func WithReadiness(ready func() error) Option {
	return func(s *idServiceImpl) {
		s.ready = ready
	}
}

// NewIDService creates a new ID service. entityTypes maps entity names to
// snowflake entity type tags; names are matched case-insensitively.
func NewIDService(registry *generator.Registry, entityTypes map[string]uint32, opts ...Option) (IDService, error) {
	s := &idServiceImpl{
		registry: registry,
		tags:     make(map[string]uint32, len(entityTypes)),
		names:    make(map[uint32]string, len(entityTypes)),
	}
	for name, tag := range entityTypes {
		if tag > snowflake.MaxEntityType {
			return nil, fmt.Errorf("entity type %q: tag %d out of range [0, %d]", name, tag, snowflake.MaxEntityType)
		}
		key := strings.ToLower(name)
		if other, dup := s.names[tag]; dup {
			return nil, fmt.Errorf("entity types %q and %q share tag %d", other, key, tag)
		}
		s.tags[key] = tag
		s.names[tag] = key
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *idServiceImpl) generator(kind string) (generator.Generator, error) {
	if kind == "" {
		kind = generator.KindSnowflake
	}
	gen, ok := s.registry.Get(strings.ToLower(kind))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return gen, nil
}

// resolveEntity maps an entity name or decimal tag to a tag.
func (s *idServiceImpl) resolveEntity(entity string) (uint32, error) {
	entity = strings.TrimSpace(entity)
	if entity == "" {
		return 0, nil
	}
	if tag, ok := s.tags[strings.ToLower(entity)]; ok {
		return tag, nil
	}
	if n, err := strconv.ParseUint(entity, 10, 32); err == nil && n <= snowflake.MaxEntityType {
		return uint32(n), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEntity, entity)
}

func checkCount(count int) error {
	if count < 1 || count > MaxBatchSize {
		return fmt.Errorf("%w: must be between 1 and %d, got %d", ErrInvalidCount, MaxBatchSize, count)
	}
	return nil
}

func (s *idServiceImpl) prepare(kind, entity string) (generator.Generator, uint32, error) {
	if err := s.checkReady(); err != nil {
		return nil, 0, err
	}
	gen, err := s.generator(kind)
	if err != nil {
		return nil, 0, err
	}
	tag, err := s.resolveEntity(entity)
	if err != nil {
		return nil, 0, err
	}
	return gen, tag, nil
}

func (s *idServiceImpl) checkReady() error {
	if s.ready == nil {
		return nil
	}
	if err := s.ready(); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return nil
}

func (s *idServiceImpl) Generate(ctx context.Context, kind, entity string) (string, error) {
	gen, tag, err := s.prepare(kind, entity)
	if err != nil {
		return "", err
	}

	id, err := gen.Generate(tag)
	if err != nil {
		return "", fmt.Errorf("failed to generate %s id: %w", gen.Kind(), err)
	}
	return id, nil
}

func (s *idServiceImpl) GenerateBatch(ctx context.Context, kind, entity string, count int) ([]string, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	gen, tag, err := s.prepare(kind, entity)
	if err != nil {
		return nil, err
	}

	ids, err := gen.GenerateBatch(tag, count)
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s batch: %w", gen.Kind(), err)
	}

	l := pkglog.Ctx(ctx)
	l.Debug().
		Str(pkglog.FieldIDKind, gen.Kind()).
		Uint32(pkglog.FieldEntityType, tag).
		Int(pkglog.FieldCount, count).
		Msg("batch generated")
	return ids, nil
}

func (s *idServiceImpl) Stream(ctx context.Context, kind, entity string, count int, send func(string) error) error {
	if err := checkCount(count); err != nil {
		return err
	}
	gen, tag, err := s.prepare(kind, entity)
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.checkReady(); err != nil {
			return err
		}
		id, err := gen.Generate(tag)
		if err != nil {
			return fmt.Errorf("failed to generate %s id: %w", gen.Kind(), err)
		}
		if err := send(id); err != nil {
			return err
		}
	}
	return nil
}

func (s *idServiceImpl) Validate(ctx context.Context, kind, id string) (bool, string, error) {
	gen, err := s.generator(kind)
	if err != nil {
		return false, "", err
	}

	if err := gen.Validate(id); err != nil {
		return false, strings.TrimPrefix(err.Error(), generator.ErrInvalidID.Error()+": "), nil
	}
	return true, "", nil
}

func (s *idServiceImpl) Parse(ctx context.Context, kind, id string) (*ParsedID, error) {
	gen, err := s.generator(kind)
	if err != nil {
		return nil, err
	}

	res, err := gen.Parse(id)
	if err != nil {
		return nil, err
	}

	parsed := &ParsedID{ParseResult: *res, Kind: gen.Kind()}
	if gen.Kind() == generator.KindSnowflake {
		parsed.EntityName = s.names[res.EntityType]
	}
	return parsed, nil
}

func (s *idServiceImpl) Kinds() []string {
	return s.registry.Kinds()
}
