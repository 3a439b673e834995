package middleware

import (
	"fmt"
	"strings"

	"homeservice-booking/constants"
	"homeservice-booking/types"
	"homeservice-booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Auth guards routes with the HMAC-signed bearer tokens issued by the
// identity service. The signing secret is injected from config at startup so
// there is a single source of truth for it.
type Auth struct {
	secret []byte
}

// NewAuth creates the auth middleware around the given signing secret.
func NewAuth(secret string) *Auth {
	return &Auth{secret: []byte(secret)}
}

// RequireRoles creates a middleware allowing only the given marketplace roles
// through.
func (a *Auth) RequireRoles(roles ...string) fiber.Handler {
	return a.isAuthenticated(roles)
}

// RequireAuthentication only requires valid authentication without a specific role.
func (a *Auth) RequireAuthentication() fiber.Handler {
	return a.isAuthenticated([]string{constants.RoleAny})
}

// isAuthenticated verifies the bearer token and places its claims in
// c.Locals("user"). The token carries "uuid" and "role".
func (a *Auth) isAuthenticated(roles []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := a.parseBearerToken(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Status:  fiber.StatusUnauthorized,
				Message: err.Error(),
				Data:    nil,
			})
		}

		c.Locals("user", claims)

		if !roleAllowed(claims, roles) {
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Status:  fiber.StatusForbidden,
				Message: "Insufficient permissions",
				Data:    nil,
			})
		}

		return c.Next()
	}
}

func (a *Auth) parseBearerToken(c *fiber.Ctx) (jwt.MapClaims, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("authorization header missing")
	}

	// Split "Bearer <token>"
	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return nil, fmt.Errorf("invalid token format")
	}

	token, err := jwt.Parse(tokenParts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

func roleAllowed(claims jwt.MapClaims, roles []string) bool {
	userRole := utils.RoleFromClaims(claims)
	for _, role := range roles {
		if role == constants.RoleAny || role == userRole {
			return true
		}
	}
	return false
}
