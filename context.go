package goVault

import "context"

type requestIDContextKey struct{}
type gameIDContextKey struct{}

// WithRequestID attaches the caller's request identifier to ctx. The Vault
// copies it into audit event metadata so exhaustion and reclamation events
// can be correlated with the originating request.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDContextKey{}, requestID)
}

// WithGameID attaches the game session identifier to ctx. It is carried
// into audit event metadata only; the Vault never keys allocations by it.
func WithGameID(ctx context.Context, gameID string) context.Context {
	return context.WithValue(ctx, gameIDContextKey{}, gameID)
}

func requestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	requestID, _ := ctx.Value(requestIDContextKey{}).(string)
	return requestID
}

func gameIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	gameID, _ := ctx.Value(gameIDContextKey{}).(string)
	return gameID
}
