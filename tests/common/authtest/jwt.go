//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"supplier-marketplace/internal/domain/user"
	"supplier-marketplace/internal/pkg/clock"
	"supplier-marketplace/internal/pkg/config"
	"supplier-marketplace/internal/pkg/jwt"
)

// JWTHelper signs tokens the way the running service would, plus the broken variants the auth
// tests need.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.sign(t, h.cfg.Secret, clock.NewRealClock(), userID, role)
}

// CreateExpiredToken signs a token whose expiry already lies in the past.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.sign(t, h.cfg.Secret, clock.NewMockClock(time.Now().Add(-2*h.cfg.TTL)), userID, role)
}

// CreateForeignToken signs with a different secret.
func (h *JWTHelper) CreateForeignToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.sign(t, h.cfg.Secret+"-other", clock.NewRealClock(), userID, role)
}

func (h *JWTHelper) sign(t *testing.T, secret string, clk clock.Clock, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(secret, h.cfg.TTL, clk).GenerateToken(userID, role)
	require.NoError(t, err, "sign test token")
	return token
}
