package grpc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	clocktesting "k8s.io/utils/clock/testing"

	"github.com/weiawesome/snowflake128/internal/generator"
	"github.com/weiawesome/snowflake128/internal/service"
	"github.com/weiawesome/snowflake128/pkg/snowflake"
	pb "github.com/weiawesome/snowflake128/proto/id"
)

const bufSize = 1024 * 1024

func newTestConn(t *testing.T, opts ...service.Option) *grpc.ClientConn {
	t.Helper()

	clk := clocktesting.NewFakeClock(snowflake.Epoch.Add(time.Hour))
	sf, err := snowflake.New(42, 3, snowflake.WithClock(clk))
	require.NoError(t, err)
	reg, err := generator.NewRegistry(
		generator.NewSnowflakeGenerator(sf, clk),
		generator.NewUUIDGenerator(),
		generator.NewULIDGenerator(),
	)
	require.NoError(t, err)
	svc, err := service.NewIDService(reg, map[string]uint32{"user": 1, "channel": 2}, opts...)
	require.NoError(t, err)

	lis := bufconn.Listen(bufSize)
	srv := NewServer(svc, zerolog.Nop())
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func newTestClient(t *testing.T, opts ...service.Option) pb.IDServiceClient {
	t.Helper()
	return pb.NewIDServiceClient(newTestConn(t, opts...))
}

func TestGenerateID(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	resp, err := client.GenerateID(ctx, &pb.GenerateIDRequest{Type: pb.IDType_ID_TYPE_SNOWFLAKE, Entity: "channel"})
	require.NoError(t, err)

	f := snowflake.MustParse(resp.GetId()).Fields()
	assert.Equal(t, uint32(2), f.EntityType)
	assert.Equal(t, uint32(42), f.NodeID)
	assert.Equal(t, uint32(3), f.APIVersion)
	assert.Equal(t, uint64(time.Hour/time.Millisecond), f.TimestampMs)

	resp, err = client.GenerateID(ctx, &pb.GenerateIDRequest{Type: pb.IDType_ID_TYPE_ULID})
	require.NoError(t, err)
	assert.Len(t, resp.GetId(), 26)
}

func TestGenerateID_Errors(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *pb.GenerateIDRequest
		code codes.Code
	}{
		{"unknown entity", &pb.GenerateIDRequest{Entity: "robot"}, codes.InvalidArgument},
		{"unregistered kind", &pb.GenerateIDRequest{Type: pb.IDType_ID_TYPE_KSUID}, codes.InvalidArgument},
		{"invalid enum", &pb.GenerateIDRequest{Type: pb.IDType(42)}, codes.InvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.GenerateID(ctx, tt.req)
			assert.Equal(t, tt.code, status.Code(err))
		})
	}
}

func TestGenerateBatchIDs(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	resp, err := client.GenerateBatchIDs(ctx, &pb.GenerateBatchIDsRequest{Entity: "user", Count: 100})
	require.NoError(t, err)
	require.Len(t, resp.GetIds(), 100)

	for i := 1; i < len(resp.GetIds()); i++ {
		prev := snowflake.MustParse(resp.GetIds()[i-1])
		cur := snowflake.MustParse(resp.GetIds()[i])
		assert.Equal(t, 1, cur.Compare(prev))
	}

	_, err = client.GenerateBatchIDs(ctx, &pb.GenerateBatchIDsRequest{Count: 1001})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = client.GenerateBatchIDs(ctx, &pb.GenerateBatchIDsRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestStreamIDs(t *testing.T) {
	client := newTestClient(t)

	stream, err := client.StreamIDs(context.Background(), &pb.StreamIDsRequest{Type: pb.IDType_ID_TYPE_UUID, Count: 25})
	require.NoError(t, err)

	var ids []string
	for {
		resp, err := stream.Recv()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		ids = append(ids, resp.GetId())
	}
	assert.Len(t, ids, 25)

	stream, err = client.StreamIDs(context.Background(), &pb.StreamIDsRequest{Count: 0})
	require.NoError(t, err)
	_, err = stream.Recv()
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestValidateID(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	gen, err := client.GenerateID(ctx, &pb.GenerateIDRequest{})
	require.NoError(t, err)

	resp, err := client.ValidateID(ctx, &pb.ValidateIDRequest{Id: gen.GetId()})
	require.NoError(t, err)
	assert.True(t, resp.GetValid())
	assert.Empty(t, resp.GetReason())

	resp, err = client.ValidateID(ctx, &pb.ValidateIDRequest{Id: "abc"})
	require.NoError(t, err)
	assert.False(t, resp.GetValid())
	assert.NotEmpty(t, resp.GetReason())

	_, err = client.ValidateID(ctx, &pb.ValidateIDRequest{Type: pb.IDType_ID_TYPE_NANOID, Id: "abc"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestParseID(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	gen, err := client.GenerateID(ctx, &pb.GenerateIDRequest{Entity: "user"})
	require.NoError(t, err)

	resp, err := client.ParseID(ctx, &pb.ParseIDRequest{Type: pb.IDType_ID_TYPE_SNOWFLAKE, Id: gen.GetId()})
	require.NoError(t, err)
	assert.True(t, resp.GetValid())
	assert.Equal(t, snowflake.EpochUnixMilli+int64(time.Hour/time.Millisecond), resp.GetTimestampMs())
	assert.Equal(t, uint32(1), resp.GetEntityType())
	assert.Equal(t, "user", resp.GetEntityName())
	assert.Equal(t, uint32(0), resp.GetCounter())
	assert.Equal(t, uint32(3), resp.GetApiVersion())
	assert.Equal(t, uint32(42), resp.GetNodeId())

	resp, err = client.ParseID(ctx, &pb.ParseIDRequest{Id: "not-a-number"})
	require.NoError(t, err)
	assert.False(t, resp.GetValid())
	assert.NotEmpty(t, resp.GetErrorMessage())
}

func TestToStatus(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
	}{
		{nil, codes.OK},
		{service.ErrInvalidCount, codes.InvalidArgument},
		{snowflake.ErrFieldRange, codes.InvalidArgument},
		{snowflake.ErrClockBeforeEpoch, codes.FailedPrecondition},
		{fmt.Errorf("%w: lease lost", service.ErrUnavailable), codes.Unavailable},
		{context.Canceled, codes.Canceled},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{io.ErrUnexpectedEOF, codes.Internal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.code, status.Code(toStatus(tt.err)), "%v", tt.err)
	}
}

func TestInvoke_DefaultCodec(t *testing.T) {
	conn := newTestConn(t)

	// A plain client with no call options speaks the standard proto codec.
	resp := new(pb.GenerateIDResponse)
	err := conn.Invoke(context.Background(), "/id.IDService/GenerateID",
		&pb.GenerateIDRequest{Type: pb.IDType_ID_TYPE_SNOWFLAKE, Entity: "user"}, resp)
	require.NoError(t, err)

	f := snowflake.MustParse(resp.GetId()).Fields()
	assert.Equal(t, uint32(1), f.EntityType)
	assert.Equal(t, uint32(42), f.NodeID)
}

func TestReflection_ListsIDService(t *testing.T) {
	conn := newTestConn(t)

	stream, err := reflectionpb.NewServerReflectionClient(conn).ServerReflectionInfo(context.Background())
	require.NoError(t, err)
	require.NoError(t, stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_ListServices{},
	}))
	resp, err := stream.Recv()
	require.NoError(t, err)
	require.NoError(t, stream.CloseSend())

	var names []string
	for _, svc := range resp.GetListServicesResponse().GetService() {
		names = append(names, svc.GetName())
	}
	assert.Contains(t, names, pb.IDService_ServiceDesc.ServiceName)
}

func TestGenerateID_Unavailable(t *testing.T) {
	client := newTestClient(t, service.WithReadiness(func() error {
		return errors.New("node id lease lost")
	}))
	ctx := context.Background()

	_, err := client.GenerateID(ctx, &pb.GenerateIDRequest{})
	assert.Equal(t, codes.Unavailable, status.Code(err))

	_, err = client.GenerateBatchIDs(ctx, &pb.GenerateBatchIDsRequest{Count: 5})
	assert.Equal(t, codes.Unavailable, status.Code(err))

	stream, err := client.StreamIDs(ctx, &pb.StreamIDsRequest{Count: 5})
	require.NoError(t, err)
	_, err = stream.Recv()
	assert.Equal(t, codes.Unavailable, status.Code(err))

	resp, err := client.ParseID(ctx, &pb.ParseIDRequest{Id: "not-a-number"})
	require.NoError(t, err)
	assert.False(t, resp.GetValid())
}
