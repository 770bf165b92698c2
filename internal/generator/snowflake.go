package generator

import (
	"time"

	"k8s.io/utils/clock"

	"github.com/weiawesome/snowflake128/pkg/snowflake"
)

// maxFutureSkew is how far ahead of the local clock a snowflake timestamp
// may be and still validate; other nodes' clocks are not perfectly aligned.
const maxFutureSkew = 5 * time.Second

// SnowflakeGenerator serves 128-bit snowflake IDs in decimal form.
type SnowflakeGenerator struct {
	gen   *snowflake.Generator
	clock clock.PassiveClock
}

// NewSnowflakeGenerator wraps gen. clk is used to reject IDs from the
// future and should be the clock gen was built with.
func NewSnowflakeGenerator(gen *snowflake.Generator, clk clock.PassiveClock) *SnowflakeGenerator {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &SnowflakeGenerator{gen: gen, clock: clk}
}

func (g *SnowflakeGenerator) Kind() string {
	return KindSnowflake
}

func (g *SnowflakeGenerator) Generate(entityType uint32) (string, error) {
	id, err := g.gen.Generate(entityType)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (g *SnowflakeGenerator) GenerateBatch(entityType uint32, count int) ([]string, error) {
	return batch(count, func() (string, error) {
		return g.Generate(entityType)
	})
}

func (g *SnowflakeGenerator) Validate(id string) error {
	_, err := g.parse(id)
	return err
}

func (g *SnowflakeGenerator) Parse(id string) (*ParseResult, error) {
	f, err := g.parse(id)
	if err != nil {
		return nil, err
	}
	return &ParseResult{
		TimestampMs: snowflake.EpochUnixMilli + int64(f.TimestampMs),
		EntityType:  f.EntityType,
		Counter:     f.Counter,
		APIVersion:  f.APIVersion,
		NodeID:      f.NodeID,
	}, nil
}

func (g *SnowflakeGenerator) parse(s string) (snowflake.Fields, error) {
	id, err := snowflake.Parse(s)
	if err != nil {
		return snowflake.Fields{}, invalid("not a 128-bit decimal integer")
	}

	f := snowflake.Decode(id)
	if canonical, _ := snowflake.Encode(f); canonical != id {
		return snowflake.Fields{}, invalid("reserved bits are set")
	}

	limit, err := snowflake.Since(g.clock.Now().Add(maxFutureSkew))
	if err == nil && f.TimestampMs > limit {
		return snowflake.Fields{}, invalid("timestamp is in the future")
	}
	return f, nil
}

// Node returns the wrapped generator.
func (g *SnowflakeGenerator) Node() *snowflake.Generator {
	return g.gen
}
