package logging

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/ctxdata"
)

// NewUnaryLoggingInterceptor logs every unary call on the health server and
// propagates x-trace-id from incoming metadata.
func NewUnaryLoggingInterceptor(logger *Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()

		clientIP := "unknown"
		if p, ok := peer.FromContext(ctx); ok {
			clientIP = p.Addr.String()
		}

		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get("x-trace-id"); len(values) > 0 {
				ctx = ctxdata.WithTraceID(ctx, values[0])
			}
		}

		ctx = ContextWithLogger(ctx, logger)

		resp, err := handler(ctx, req)

		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("client_ip", clientIP),
			zap.Duration("duration", time.Since(start)),
		}

		if err != nil {
			fields = append(fields, zap.Error(err))
			logger.Error(ctx, "grpc request failed", fields...)
		} else {
			logger.Debug(ctx, "grpc request handled", fields...)
		}

		return resp, err
	}
}
