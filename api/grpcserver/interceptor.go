package grpcserver

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	requestIDKey    = "x-request-id"
	instrumentation = "coffee/api/grpcserver"
)

// UnaryInterceptor traces and logs every unary call. The request id is
// taken from the x-request-id header when the caller sends one and is
// echoed back in the response header.
func UnaryInterceptor(log *zap.Logger) grpc.UnaryServerInterceptor {
	tracer := otel.Tracer(instrumentation)

	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		md, _ := metadata.FromIncomingContext(ctx)
		ctx = otel.GetTextMapPropagator().Extract(ctx, metadataCarrier(md))

		ctx, span := tracer.Start(ctx, info.FullMethod, trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()

		reqID := requestID(md)
		_ = grpc.SetHeader(ctx, metadata.Pairs(requestIDKey, reqID))

		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)

		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("request_id", reqID),
			zap.Stringer("code", code),
			zap.Duration("elapsed", time.Since(start)),
		}
		switch code {
		case codes.OK:
			log.Debug("rpc", fields...)
		case codes.NotFound, codes.Canceled, codes.DeadlineExceeded:
			log.Info("rpc", append(fields, zap.Error(err))...)
		default:
			span.SetStatus(otelcodes.Error, err.Error())
			log.Error("rpc", append(fields, zap.Error(err))...)
		}
		return resp, err
	}
}

func requestID(md metadata.MD) string {
	if v := md.Get(requestIDKey); len(v) > 0 && v[0] != "" {
		return v[0]
	}
	return uuid.NewString()
}

// metadataCarrier lets the OTel propagator read gRPC metadata.
type metadataCarrier metadata.MD

func (c metadataCarrier) Get(key string) string {
	if v := metadata.MD(c).Get(key); len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c metadataCarrier) Set(key, value string) {
	metadata.MD(c).Set(key, value)
}

func (c metadataCarrier) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	return keys
}
