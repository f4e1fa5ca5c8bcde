package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const claimsKey = "claims"

// SetClaims attaches verified claims to the request.
func SetClaims(c *fiber.Ctx, claims *Claims) {
	c.Locals(claimsKey, claims)
}

// ClaimsFrom returns the claims attached by the gate, if any.
func ClaimsFrom(c *fiber.Ctx) (*Claims, bool) {
	claims, ok := c.Locals(claimsKey).(*Claims)
	return claims, ok && claims != nil
}

// ActorID extracts the authenticated account UUID from the request.
func ActorID(c *fiber.Ctx) (uuid.UUID, error) {
	claims, ok := ClaimsFrom(c)
	if !ok {
		return uuid.Nil, errors.New("no claims in context")
	}
	return uuid.Parse(claims.AccountID)
}
