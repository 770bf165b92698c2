package log

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// MetadataKeyRequestID carries the request ID in gRPC metadata.
const MetadataKeyRequestID = "x-request-id"

// UnaryServerInterceptor returns a gRPC unary server interceptor that
// creates a child logger with request metadata and injects it into context.
func UnaryServerInterceptor(logger zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()
		ctx, child := serverContext(ctx, logger, info.FullMethod)

		resp, err := handler(ctx, req)

		logCompleted(child, start, err, "unary call completed")
		return resp, err
	}
}

// StreamServerInterceptor returns a gRPC stream server interceptor that
// creates a child logger with request metadata and injects it into context.
func StreamServerInterceptor(logger zerolog.Logger) grpc.StreamServerInterceptor {
	return func(
		srv interface{},
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		start := time.Now()
		ctx, child := serverContext(ss.Context(), logger, info.FullMethod)

		err := handler(srv, &wrappedStream{ServerStream: ss, ctx: ctx})

		logCompleted(child, start, err, "stream call completed")
		return err
	}
}

// UnaryClientInterceptor forwards the request ID found in the context, if
// any, as outgoing metadata.
func UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply interface{},
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		if id := RequestID(ctx); id != "" {
			ctx = metadata.AppendToOutgoingContext(ctx, MetadataKeyRequestID, id)
		}
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

// wrappedStream overrides Context() to inject the child logger.
type wrappedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *wrappedStream) Context() context.Context {
	return w.ctx
}

func serverContext(ctx context.Context, logger zerolog.Logger, method string) (context.Context, zerolog.Logger) {
	reqID := requestIDFromMD(ctx)

	lc := logger.With().
		Str(FieldRequestID, reqID).
		Str(FieldGRPCMethod, method)
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		lc = lc.Str(FieldPeer, p.Addr.String())
	}
	child := lc.Logger()

	return WithRequestID(WithLogger(ctx, child), reqID), child
}

func logCompleted(child zerolog.Logger, start time.Time, err error, msg string) {
	code := status.Code(err)

	var evt *zerolog.Event
	switch code {
	case codes.OK:
		evt = child.Info()
	case codes.Internal, codes.Unknown, codes.DataLoss, codes.Unavailable:
		evt = child.Error()
	default:
		evt = child.Warn()
	}
	evt.Str(FieldGRPCCode, code.String()).
		Float64(FieldLatency, float64(time.Since(start).Microseconds())/1000).
		Err(err).
		Msg(msg)
}

func requestIDFromMD(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		vals := md.Get(MetadataKeyRequestID)
		if len(vals) > 0 && vals[0] != "" {
			return vals[0]
		}
	}
	return uuid.New().String()
}
