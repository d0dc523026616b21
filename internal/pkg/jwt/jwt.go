package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"supplier-marketplace/internal/domain/user"
	"supplier-marketplace/internal/pkg/clock"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims carries the identity of a session. UserID duplicates ID because browser clients read
// either name.
type Claims struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"userId"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// subject resolves the user id, accepting tokens that only carry one of the two names.
func (c *Claims) subject() uuid.UUID {
	if c.ID != uuid.Nil {
		return c.ID
	}
	return c.UserID
}

// Service issues and verifies HS256 session tokens. Both directions read time from the clock.
type Service struct {
	key    []byte
	ttl    time.Duration
	clock  clock.Clock
	parser *jwt.Parser
}

func NewService(secretKey string, tokenDuration time.Duration, clk clock.Clock) *Service {
	return &Service{
		key:   []byte(secretKey),
		ttl:   tokenDuration,
		clock: clk,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithTimeFunc(clk.Now),
		),
	}
}

func (s *Service) TokenDuration() time.Duration {
	return s.ttl
}

func (s *Service) GenerateToken(userID uuid.UUID, role user.Role) (string, error) {
	issued := s.clock.Now()
	return jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		ID:     userID,
		UserID: userID,
		Role:   role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(s.ttl)),
		},
	}).SignedString(s.key)
}

// ValidateToken returns ErrExpiredToken for an expired but otherwise sound token and
// ErrInvalidToken for everything else, including a token without a user id.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, err := s.parser.ParseWithClaims(tokenString, claims, s.keyFor); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	id := claims.subject()
	if id == uuid.Nil {
		return nil, ErrInvalidToken
	}
	claims.ID = id
	return claims, nil
}

func (s *Service) keyFor(t *jwt.Token) (any, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrInvalidToken
	}
	return s.key, nil
}
