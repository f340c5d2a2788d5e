package rescue

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/erazemk/zavetisce/internal/store"
)

// SigningSecret returns the token signing secret, creating it on first use.
func (s *Service) SigningSecret(ctx context.Context) (string, error) {
	return store.GetJWTSecret(ctx, s.db)
}

// RevokeToken blocks a token id until it would have expired anyway, and
// forgets revocations that have outlived their token.
func (s *Service) RevokeToken(ctx context.Context, jti string, expiresAt time.Time) error {
	if err := store.RevokeToken(ctx, s.db, jti, expiresAt); err != nil {
		return err
	}
	if n, err := store.PurgeRevokedTokens(ctx, s.db, s.timestamp()); err != nil {
		s.log.Warn("purging revoked tokens", zap.Error(err))
	} else if n > 0 {
		s.log.Debug("purged revoked tokens", zap.Int64("count", n))
	}
	return nil
}

// IsTokenRevoked reports whether a token id was revoked at logout.
func (s *Service) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	return store.IsTokenRevoked(ctx, s.db, jti)
}
