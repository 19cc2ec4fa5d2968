// Package token issues and verifies the signed, stateless access and refresh
// tokens used by the authentication gate. Verification is purely
// cryptographic/temporal — no server-side session store exists, so a token
// cannot be revoked before its natural expiry.
package token

import (
	"strings"
	"time"

	"hrms-backend/internal/config"
	"hrms-backend/internal/model"
	"hrms-backend/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
)

// Token kind claim values. An access token must never carry KindRefresh and
// the refresh endpoint only accepts KindRefresh.
const (
	KindAccess  = "access"
	KindRefresh = "refresh"
)

// Claims is the signed claim set carried by both token kinds. Display fields
// are denormalized from the user record at issuance so authenticated requests
// do not need a database read for display purposes; the authentication gate
// still re-reads the user to enforce active/deleted status.
type Claims struct {
	Email          string `json:"email,omitempty"`
	Username       string `json:"userName,omitempty"`
	Role           string `json:"role,omitempty"`
	EmployeeName   string `json:"employeeName,omitempty"`
	EmployeeNumber string `json:"employeeNumber,omitempty"`
	Kind           string `json:"kind"`
	jwt.RegisteredClaims
}

// Pair is the login/refresh response payload
type Pair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"` // seconds until the access token expires
}

// Service signs and verifies tokens with configuration injected at
// construction time.
type Service struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	issuer     string
	audience   string
}

// NewService returns a token Service bound to the given JWT configuration
func NewService(cfg config.JWTConfig) *Service {
	return &Service{
		secret:     []byte(cfg.Secret),
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		issuer:     cfg.Issuer,
		audience:   cfg.Audience,
	}
}

// IssueAccessToken signs a short-lived access token carrying identity and
// display claims for the given user
func (s *Service) IssueAccessToken(user *model.User) (string, error) {
	return s.sign(&Claims{
		Email:          user.Email,
		Username:       user.Username,
		Role:           user.Role,
		EmployeeName:   user.EmployeeName,
		EmployeeNumber: user.EmployeeNumber,
		Kind:           KindAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})
}

// IssueRefreshToken signs a longer-lived token carrying only the subject id
// and the refresh kind marker
func (s *Service) IssueRefreshToken(user *model.User) (string, error) {
	return s.sign(&Claims{
		Kind: KindRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.refreshTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})
}

// IssueTokenPair combines access and refresh issuance into the standard
// bearer response shape
func (s *Service) IssueTokenPair(user *model.User) (*Pair, error) {
	access, err := s.IssueAccessToken(user)
	if err != nil {
		return nil, err
	}
	refresh, err := s.IssueRefreshToken(user)
	if err != nil {
		return nil, err
	}
	return &Pair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

// Verify parses and validates a token string. Every failure mode — bad
// signature, wrong issuer or audience, expiry, malformed input — collapses
// into apperrors.ErrInvalidToken; callers get no further distinction.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithAudience(s.audience))
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

func (s *Service) sign(claims *Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ExtractBearer parses an Authorization header of the exact form
// "Bearer <token>". Any other shape, including a missing header, yields the
// empty string rather than an error.
func ExtractBearer(header string) string {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
