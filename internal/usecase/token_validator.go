package usecase

import (
	"github.com/google/uuid"

	"supplier-marketplace/internal/domain/user"
	"supplier-marketplace/internal/pkg/errs"
	"supplier-marketplace/internal/pkg/jwt"
)

var (
	ErrTokenRejected  = errs.Mark(errs.New("Invalid or expired token"), errs.ErrForbidden)
	errSubjectClashes = errs.New("token id and userId name different users")
)

// TokenValidator resolves a bearer token to the caller. The auth middleware is its only user.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

// ClaimsParser verifies signature and expiry; *jwt.Service implements it.
type ClaimsParser interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type tokenValidatorImpl struct {
	parser ClaimsParser
}

func NewTokenValidator(parser ClaimsParser) TokenValidator {
	return &tokenValidatorImpl{parser: parser}
}

// ValidateToken rejects bad signatures, expired tokens, tokens whose id and userId disagree and
// roles outside the known set alike, all as ErrTokenRejected.
func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.parser.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrTokenRejected)
	}

	if claims.UserID != uuid.Nil && claims.UserID != claims.ID {
		return uuid.Nil, "", errs.Mark(errSubjectClashes, ErrTokenRejected)
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Mark(errs.Wrapf(err, "role claim %q", claims.Role), ErrTokenRejected)
	}

	return claims.ID, role, nil
}
