package middleware

import (
	"net/http"

	"hrms-backend/internal/model"
	"hrms-backend/internal/repository"
	"hrms-backend/internal/token"
	"hrms-backend/pkg/apperrors"
	"hrms-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const identityKey = "identity"

// Identity is the trusted, read-only context attached to a request after it
// passes the authentication gate. Downstream code must take identity from
// here, never from re-parsing the token.
type Identity struct {
	ID             uuid.UUID
	Email          string
	Username       string
	Role           string
	EmployeeName   string
	EmployeeNumber string
	IsTempPassword bool
}

// GetIdentity returns the identity attached by Authenticate, if any
func GetIdentity(c *gin.Context) (*Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*Identity)
	return identity, ok
}

// AuthMiddleware wires the token service and the credential store into the
// per-request gates
type AuthMiddleware struct {
	tokens *token.Service
	users  repository.UserRepository
}

// NewAuthMiddleware returns the middleware set used by the routing layer
func NewAuthMiddleware(tokens *token.Service, users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// Authenticate extracts and verifies the bearer token, then re-resolves the
// user from the credential store so accounts deactivated or deleted after
// issuance are still rejected.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, status, err := m.resolve(c)
		if err != nil {
			c.AbortWithStatusJSON(status, response.Error(err.Error()))
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// OptionalAuthenticate performs the same resolution but treats every failure
// as anonymous: no identity is attached and the request proceeds.
func (m *AuthMiddleware) OptionalAuthenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity, _, err := m.resolve(c); err == nil {
			c.Set(identityKey, identity)
		}
		c.Next()
	}
}

func (m *AuthMiddleware) resolve(c *gin.Context) (*Identity, int, error) {
	tokenString := token.ExtractBearer(c.GetHeader("Authorization"))
	if tokenString == "" {
		return nil, http.StatusUnauthorized, apperrors.ErrMissingToken
	}

	claims, err := m.tokens.Verify(tokenString)
	if err != nil {
		return nil, http.StatusUnauthorized, apperrors.ErrInvalidToken
	}
	// A refresh token is not a credential for protected routes
	if claims.Kind != token.KindAccess {
		return nil, http.StatusUnauthorized, apperrors.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, http.StatusUnauthorized, apperrors.ErrInvalidToken
	}

	user, err := m.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		return nil, http.StatusUnauthorized, apperrors.ErrUserNotFound
	}
	if !user.IsActive {
		return nil, http.StatusForbidden, apperrors.ErrAccountDeactivated
	}

	return &Identity{
		ID:             user.ID,
		Email:          user.Email,
		Username:       user.Username,
		Role:           user.Role,
		EmployeeName:   user.EmployeeName,
		EmployeeNumber: user.EmployeeNumber,
		IsTempPassword: user.IsTempPassword,
	}, 0, nil
}

// RequireRoles allows the request only when the authenticated identity's role
// is in the allow-list. Unknown role values are denied regardless of the
// list. The unauthenticated check is defensive — the routing layer composes
// Authenticate before this gate, but misordering must not fail open.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(apperrors.ErrUnauthenticated.Error()))
			return
		}

		if !model.IsValidRole(identity.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(apperrors.ErrInsufficientPermissions.Error()))
			return
		}

		for _, role := range allowedRoles {
			if identity.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, response.Error(apperrors.ErrInsufficientPermissions.Error()))
	}
}

// RequirePasswordChange blocks identities still carrying a temporary password
// until the password has been rotated
func RequirePasswordChange() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(apperrors.ErrUnauthenticated.Error()))
			return
		}
		if identity.IsTempPassword {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(apperrors.ErrPasswordChangeRequired.Error()))
			return
		}
		c.Next()
	}
}
