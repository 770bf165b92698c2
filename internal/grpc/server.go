package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/weiawesome/snowflake128/internal/generator"
	"github.com/weiawesome/snowflake128/internal/service"
	pkglog "github.com/weiawesome/snowflake128/pkg/log"
	"github.com/weiawesome/snowflake128/pkg/snowflake"
	pb "github.com/weiawesome/snowflake128/proto/id"
)

type idServer struct {
	pb.UnimplementedIDServiceServer
	svc service.IDService
}

// NewIDServer adapts svc to the gRPC service interface.
func NewIDServer(svc service.IDService) pb.IDServiceServer {
	return &idServer{svc: svc}
}

func kindOf(t pb.IDType) (string, error) {
	kind := t.Kind()
	if kind == "" {
		return "", status.Errorf(codes.InvalidArgument, "unknown ID type: %v", t)
	}
	return kind, nil
}

// toStatus maps service errors to gRPC status codes.
func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, service.ErrUnknownKind),
		errors.Is(err, service.ErrUnknownEntity),
		errors.Is(err, service.ErrInvalidCount),
		errors.Is(err, snowflake.ErrFieldRange):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, snowflake.ErrClockBeforeEpoch):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func (s *idServer) GenerateID(ctx context.Context, req *pb.GenerateIDRequest) (*pb.GenerateIDResponse, error) {
	kind, err := kindOf(req.GetType())
	if err != nil {
		return nil, err
	}

	id, err := s.svc.Generate(ctx, kind, req.GetEntity())
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.GenerateIDResponse{Id: id}, nil
}

func (s *idServer) GenerateBatchIDs(ctx context.Context, req *pb.GenerateBatchIDsRequest) (*pb.GenerateBatchIDsResponse, error) {
	kind, err := kindOf(req.GetType())
	if err != nil {
		return nil, err
	}

	ids, err := s.svc.GenerateBatch(ctx, kind, req.GetEntity(), int(req.GetCount()))
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.GenerateBatchIDsResponse{Ids: ids}, nil
}

func (s *idServer) StreamIDs(req *pb.StreamIDsRequest, stream pb.IDService_StreamIDsServer) error {
	kind, err := kindOf(req.GetType())
	if err != nil {
		return err
	}

	err = s.svc.Stream(stream.Context(), kind, req.GetEntity(), int(req.GetCount()), func(id string) error {
		return stream.Send(&pb.GenerateIDResponse{Id: id})
	})
	if _, ok := status.FromError(err); ok {
		return err
	}
	return toStatus(err)
}

func (s *idServer) ValidateID(ctx context.Context, req *pb.ValidateIDRequest) (*pb.ValidateIDResponse, error) {
	kind, err := kindOf(req.GetType())
	if err != nil {
		return nil, err
	}

	valid, reason, err := s.svc.Validate(ctx, kind, req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ValidateIDResponse{
		Valid:  valid,
		Reason: reason,
	}, nil
}

func (s *idServer) ParseID(ctx context.Context, req *pb.ParseIDRequest) (*pb.ParseIDResponse, error) {
	kind, err := kindOf(req.GetType())
	if err != nil {
		return nil, err
	}

	result, err := s.svc.Parse(ctx, kind, req.GetId())
	if errors.Is(err, generator.ErrInvalidID) {
		return &pb.ParseIDResponse{
			Valid:        false,
			ErrorMessage: err.Error(),
		}, nil
	}
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.ParseIDResponse{
		Valid:         true,
		TimestampMs:   result.TimestampMs,
		EntityType:    result.EntityType,
		EntityName:    result.EntityName,
		Counter:       result.Counter,
		ApiVersion:    result.APIVersion,
		NodeId:        result.NodeID,
		UuidVersion:   result.UUIDVersion,
		UuidVariant:   result.UUIDVariant,
		RandomPayload: result.RandomPayload,
		IdLength:      result.IDLength,
		Alphabet:      result.Alphabet,
	}, nil
}

// NewServer builds a gRPC server with logging interceptors, the ID service
// and server reflection registered.
func NewServer(svc service.IDService, logger zerolog.Logger, opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.UnaryInterceptor(pkglog.UnaryServerInterceptor(logger)),
		grpc.StreamInterceptor(pkglog.StreamServerInterceptor(logger)),
	}, opts...)

	s := grpc.NewServer(opts...)
	pb.RegisterIDServiceServer(s, NewIDServer(svc))
	reflection.Register(s)
	return s
}

// Listen opens the TCP listener for addr.
func Listen(addr string) (net.Listener, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return lis, nil
}
