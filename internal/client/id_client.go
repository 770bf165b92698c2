package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pkglog "github.com/weiawesome/snowflake128/pkg/log"
	pb "github.com/weiawesome/snowflake128/proto/id"
)

// IDClient talks to a running ID service over gRPC.
type IDClient struct {
	conn   *grpc.ClientConn
	client pb.IDServiceClient
}

// NewIDClient connects to address. Extra dial options are appended after
// the defaults (insecure transport, request ID forwarding).
func NewIDClient(address string, opts ...grpc.DialOption) (*IDClient, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(pkglog.UnaryClientInterceptor()),
	}, opts...)

	conn, err := grpc.NewClient(address, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to id service: %w", err)
	}

	return &IDClient{
		conn:   conn,
		client: pb.NewIDServiceClient(conn),
	}, nil
}

// GenerateID generates a single ID of the given type for entity.
func (c *IDClient) GenerateID(ctx context.Context, t pb.IDType, entity string) (string, error) {
	resp, err := c.client.GenerateID(ctx, &pb.GenerateIDRequest{
		Type:   t,
		Entity: entity,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate ID: %w", err)
	}
	return resp.GetId(), nil
}

// GenerateBatch generates count IDs in one call.
func (c *IDClient) GenerateBatch(ctx context.Context, t pb.IDType, entity string, count int) ([]string, error) {
	resp, err := c.client.GenerateBatchIDs(ctx, &pb.GenerateBatchIDsRequest{
		Type:   t,
		Entity: entity,
		Count:  int32(count),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate batch IDs: %w", err)
	}
	return resp.GetIds(), nil
}

// Stream requests count IDs over a server stream and calls fn for each one
// as it arrives. A non-nil error from fn cancels the stream.
func (c *IDClient) Stream(ctx context.Context, t pb.IDType, entity string, count int, fn func(id string) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := c.client.StreamIDs(ctx, &pb.StreamIDsRequest{
		Type:   t,
		Entity: entity,
		Count:  int32(count),
	})
	if err != nil {
		return fmt.Errorf("failed to open ID stream: %w", err)
	}
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to receive ID: %w", err)
		}
		if err := fn(resp.GetId()); err != nil {
			return err
		}
	}
}

// Validate asks the service whether id is well formed.
func (c *IDClient) Validate(ctx context.Context, t pb.IDType, id string) (*pb.ValidateIDResponse, error) {
	resp, err := c.client.ValidateID(ctx, &pb.ValidateIDRequest{Type: t, Id: id})
	if err != nil {
		return nil, fmt.Errorf("failed to validate ID: %w", err)
	}
	return resp, nil
}

// Parse asks the service to decode id.
func (c *IDClient) Parse(ctx context.Context, t pb.IDType, id string) (*pb.ParseIDResponse, error) {
	resp, err := c.client.ParseID(ctx, &pb.ParseIDRequest{Type: t, Id: id})
	if err != nil {
		return nil, fmt.Errorf("failed to parse ID: %w", err)
	}
	return resp, nil
}

func (c *IDClient) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
