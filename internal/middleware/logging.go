package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor returns a Connect interceptor that writes one log line per RPC.
// Client mistakes are logged at warn, server faults at error.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			level, msg, attrs := rpcOutcome(err)
			attrs = append(attrs,
				slog.String("procedure", req.Spec().Procedure),
				slog.String("request_id", GetRequestID(ctx)),
				slog.String("peer", req.Peer().Addr),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			)
			slog.LogAttrs(ctx, level, msg, attrs...)

			return resp, err
		}
	}
}

// rpcOutcome picks the level, message and error attributes for a finished call.
func rpcOutcome(err error) (slog.Level, string, []slog.Attr) {
	if err == nil {
		return slog.LevelInfo, "RPC ok", nil
	}

	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		return slog.LevelError, "RPC error", []slog.Attr{slog.Any("error", err)}
	}

	attrs := []slog.Attr{
		slog.String("code", connectErr.Code().String()),
		slog.String("error", connectErr.Message()),
	}
	if connectErr.Code() == connect.CodeInternal || connectErr.Code() == connect.CodeUnknown {
		return slog.LevelError, "RPC error", attrs
	}
	return slog.LevelWarn, "RPC error", attrs
}
