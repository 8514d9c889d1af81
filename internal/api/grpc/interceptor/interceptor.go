package interceptor

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"servicelog-backend/internal/logger"
)

// Unary returns a server interceptor that logs each RPC and turns panics
// into codes.Internal.
func Unary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				logger.Error("RPC panicked", "method", info.FullMethod, "panic", r)
				err = status.Error(codes.Internal, "internal error")
			}
			code := status.Code(err)
			if code == codes.OK || code == codes.NotFound {
				logger.Debug("RPC handled", "method", info.FullMethod, "code", code.String(), "duration", time.Since(start))
				return
			}
			logger.Warn("RPC failed", "method", info.FullMethod, "code", code.String(), "error", err, "duration", time.Since(start))
		}()

		return handler(ctx, req)
	}
}

// Stream is the streaming counterpart of Unary, used by health Watch.
func Stream() grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Stream panicked", "method", info.FullMethod, "panic", r)
				err = status.Error(codes.Internal, "internal error")
			}
		}()
		logger.Debug("Stream opened", "method", info.FullMethod)
		return handler(srv, ss)
	}
}
