package cli

import (
	"bytes"
	"context"
	"net"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiawesome/snowflake128/internal/generator"
	idgrpc "github.com/weiawesome/snowflake128/internal/grpc"
	"github.com/weiawesome/snowflake128/internal/service"
	"github.com/weiawesome/snowflake128/pkg/snowflake"
)

// startService runs a real ID service on a loopback port and points idctl
// at it through IDCTL_ADDR.
func startService(t *testing.T) {
	t.Helper()

	sf, err := snowflake.New(42, 3)
	require.NoError(t, err)
	registry, err := generator.NewRegistry(
		generator.NewSnowflakeGenerator(sf, nil),
		generator.NewULIDGenerator(),
	)
	require.NoError(t, err)
	svc, err := service.NewIDService(registry, map[string]uint32{"user": 1})
	require.NoError(t, err)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv := idgrpc.NewServer(svc, zerolog.Nop())
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	t.Setenv("IDCTL_ADDR", lis.Addr().String())
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRoot()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDecode(t *testing.T) {
	out, err := run(t, "decode", "18446816162141465739264")
	require.NoError(t, err)

	var got decodedID
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "00000000000003e801001c0c00a80000", got.Hex)
	assert.Equal(t, "2020-01-01T00:00:01Z", got.Time)
	assert.Equal(t, snowflake.Fields{TimestampMs: 1000, EntityType: 1, Counter: 7, APIVersion: 3, NodeID: 42}, got.Fields)
}

func TestDecode_Hex(t *testing.T) {
	out, err := run(t, "decode", "--hex", "00000000000003e801001c0c00a80000")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "18446816162141465739264"`)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := run(t, "decode", "not-a-number")
	assert.ErrorIs(t, err, snowflake.ErrInvalidFormat)

	_, err = run(t, "decode")
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	out, err := run(t, "encode", "--timestamp", "1000", "--entity", "1", "--counter", "7", "--version", "3", "--node", "42")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "18446816162141465739264"`)
}

func TestEncode_At(t *testing.T) {
	out, err := run(t, "encode", "--at", "2020-01-01T00:00:01Z", "--node", "42")
	require.NoError(t, err)
	assert.Contains(t, out, `"timestamp_ms": 1000`)

	_, err = run(t, "encode", "--at", "1999-01-01T00:00:00Z")
	assert.ErrorIs(t, err, snowflake.ErrClockBeforeEpoch)

	_, err = run(t, "encode", "--at", "yesterday")
	assert.ErrorContains(t, err, "invalid --at")
}

func TestEncode_OutOfRange(t *testing.T) {
	_, err := run(t, "encode", "--node", "70000")
	assert.ErrorIs(t, err, snowflake.ErrFieldRange)
}

func TestGenerate(t *testing.T) {
	startService(t)

	out, err := run(t, "generate", "--entity", "user")
	require.NoError(t, err)

	id, err := snowflake.Parse(strings.TrimSpace(out))
	require.NoError(t, err)
	f := id.Fields()
	assert.Equal(t, uint32(42), f.NodeID)
	assert.Equal(t, uint32(3), f.APIVersion)
	assert.Equal(t, uint32(1), f.EntityType)
}

func TestGenerate_BatchAndStream(t *testing.T) {
	startService(t)

	for _, args := range [][]string{
		{"generate", "-n", "5"},
		{"generate", "-n", "5", "--stream"},
		{"generate", "-n", "5", "--kind", "ulid"},
	} {
		out, err := run(t, args...)
		require.NoError(t, err, "%v", args)
		lines := strings.Fields(out)
		assert.Len(t, lines, 5, "%v", args)
	}
}

func TestGenerate_Errors(t *testing.T) {
	startService(t)

	_, err := run(t, "generate", "--kind", "guid")
	assert.ErrorContains(t, err, "unknown id type")

	_, err = run(t, "generate", "--count", "0")
	assert.ErrorContains(t, err, "--count")

	_, err = run(t, "generate", "--entity", "invoice")
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	startService(t)

	out, err := run(t, "generate", "--entity", "user")
	require.NoError(t, err)

	out, err = run(t, "parse", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Contains(t, out, `"valid": true`)
	assert.Contains(t, out, `"entity_name": "user"`)
	assert.Contains(t, out, `"node_id": 42`)
}

func TestValidate(t *testing.T) {
	startService(t)

	out, err := run(t, "generate")
	require.NoError(t, err)

	out, err = run(t, "validate", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "valid\n", out)

	_, err = run(t, "validate", "abc")
	assert.ErrorIs(t, err, ErrInvalidID)
}
