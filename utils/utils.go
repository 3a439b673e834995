package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"homeservice-booking/database"
	"homeservice-booking/models/user"
	"homeservice-booking/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxLoggedBodyBytes caps request/response bodies in the audit log so one
// oversized payload cannot bloat the logs table.
const maxLoggedBodyBytes = 10 * 1024

// GenerateReferenceNumber returns a human-readable unique booking reference,
// e.g. "HSB-9F2A41C7".
func GenerateReferenceNumber() string {
	id := uuid.New().String()
	return "HSB-" + strings.ToUpper(strings.ReplaceAll(id, "-", "")[:8])
}

// ClaimsFromContext returns the JWT claims placed by the auth middleware.
func ClaimsFromContext(c *fiber.Ctx) (jwt.MapClaims, error) {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("user claims missing from context")
	}
	return claims, nil
}

// RoleFromClaims extracts the marketplace role from JWT claims.
func RoleFromClaims(claims jwt.MapClaims) string {
	role, _ := claims["role"].(string)
	return role
}

// UUIDFromClaims extracts the caller's identity UUID from JWT claims.
func UUIDFromClaims(claims jwt.MapClaims) (string, error) {
	uid, ok := claims["uuid"].(string)
	if !ok || uid == "" {
		return "", fmt.Errorf("uuid not found in token")
	}
	return uid, nil
}

// CreateLogEntry builds a request/response log entry from the fiber context.
// Bodies and headers are deep copied so the entry stays valid after fiber
// recycles the context, and bodies are truncated to a sane size.
func CreateLogEntry(c *fiber.Ctx) types.LogEntry {
	method := string([]byte(c.Method()))
	url := string([]byte(c.OriginalURL()))
	requestBody := truncateBody(c.Body())
	responseBody := truncateBody(c.Response().Body())

	requestHeaders := make([]byte, len(c.Request().Header.Header()))
	copy(requestHeaders, c.Request().Header.Header())

	responseHeaders := make([]byte, len(c.Response().Header.Header()))
	copy(responseHeaders, c.Response().Header.Header())

	return types.LogEntry{
		Method:          method,
		URL:             url,
		RequestBody:     requestBody,
		ResponseBody:    responseBody,
		RequestHeaders:  string(requestHeaders),
		ResponseHeaders: string(responseHeaders),
		StatusCode:      c.Response().StatusCode(),
		CreatedAt:       time.Now(),
	}
}

func truncateBody(body []byte) string {
	if len(body) > maxLoggedBodyBytes {
		body = body[:maxLoggedBodyBytes]
	}
	return string(append([]byte(nil), body...))
}

// GetUserByUUID retrieves a user by their UUID from the database
func GetUserByUUID(uuid string) (*user.User, error) {
	if uuid == "" {
		return nil, errors.New("UUID cannot be empty")
	}

	var userModel user.User
	if err := database.DB.Where("uuid = ?", uuid).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}

	return &userModel, nil
}
