//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"parking-settlement/internal/domain/operator"
	"parking-settlement/internal/pkg/config"
	"parking-settlement/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints operator tokens with the secret the service validates against.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, operatorID, establishmentID uuid.UUID, role operator.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer)
	token, err := service.GenerateToken(operatorID, establishmentID, role.String(), time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, operatorID, establishmentID uuid.UUID, role operator.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer)
	token, err := service.GenerateToken(operatorID, establishmentID, role.String(), -time.Minute)
	require.NoError(t, err)
	return token
}
