package middleware

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/auth"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/services"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Policy is the set of roles allowed through a gate.
type Policy struct {
	Roles  []auth.Role
	Denied string
}

var (
	SuperAdminOnly = Policy{Roles: []auth.Role{auth.RoleSuperAdmin}, Denied: "Access denied. Super admin only."}
	AdminOnly      = Policy{Roles: []auth.Role{auth.RoleAdmin}, Denied: "Access denied. Admin only."}
	AnyStaff       = Policy{Roles: []auth.Role{auth.RoleSuperAdmin, auth.RoleAdmin}, Denied: "Access denied."}
)

func (p Policy) Allows(role auth.Role) bool {
	return slices.Contains(p.Roles, role)
}

// AccountVerifier confirms that the account behind a valid token may still act.
type AccountVerifier interface {
	VerifyAccount(ctx context.Context, claims *auth.Claims) error
}

// Gate authenticates the bearer token and authorizes its role against policy.
// Missing or invalid tokens yield 401, a role outside the policy yields 403.
func Gate(tokens *auth.TokenService, accounts AccountVerifier, policy Policy) fiber.Handler {
	return jwtware.New(jwtware.Config{
		KeyFunc: tokens.Keyfunc,
		Claims:  &auth.Claims{},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			msg := "Invalid or expired token"
			if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
				msg = "No token provided"
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: msg})
		},
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Invalid or expired token"})
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Invalid or expired token"})
			}

			if !policy.Allows(claims.Role) {
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: policy.Denied})
			}

			if accounts != nil {
				if err := accounts.VerifyAccount(c.UserContext(), claims); err != nil {
					switch {
					case errors.Is(err, services.ErrForbidden):
						return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: err.Error()})
					case errors.Is(err, services.ErrUnauthorized):
						return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: err.Error()})
					}
					slog.Error("account verification failed",
						"request_id", c.Locals("requestid"),
						"actor_id", claims.AccountID,
						"role", string(claims.Role),
						"error", err.Error(),
					)
					return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Internal server error"})
				}
			}

			auth.SetClaims(c, claims)
			return c.Next()
		},
	})
}
