package usecase

import (
	"parking-settlement/internal/domain/operator"
	"parking-settlement/internal/pkg/jwt"

	"github.com/google/uuid"
)

type OperatorIdentity struct {
	OperatorID      uuid.UUID
	EstablishmentID uuid.UUID
	Role            operator.Role
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (*OperatorIdentity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (*OperatorIdentity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	role, err := operator.NewRole(claims.Role)
	if err != nil {
		return nil, err
	}

	return &OperatorIdentity{
		OperatorID:      claims.OperatorID,
		EstablishmentID: claims.EstablishmentID,
		Role:            role,
	}, nil
}
