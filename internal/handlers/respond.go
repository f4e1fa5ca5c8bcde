package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/auth"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/validation"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ErrorResponder renders service errors in the failure envelope.
type ErrorResponder struct {
	exposeInternal bool
}

// NewErrorResponder returns a responder; exposeInternal adds internal error
// text to 500 responses and is meant for development only.
func NewErrorResponder(exposeInternal bool) *ErrorResponder {
	return &ErrorResponder{exposeInternal: exposeInternal}
}

func (r *ErrorResponder) Respond(c *fiber.Ctx, err error) error {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Validation error", Details: verrs,
		})
	}

	var dep *services.DependentsError
	if errors.As(err, &dep) {
		count := dep.Count
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error:      dep.Error(),
			Details:    "Delete the customer's orders first",
			OrderCount: &count,
		})
	}

	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		if status, ok := statusFor(svcErr.Kind); ok {
			return c.Status(status).JSON(dto.ErrorResponse{Error: svcErr.Message, Details: svcErr.Details})
		}
	}

	return r.Internal(c, err)
}

// Internal logs err, reports it to Sentry and answers 500.
func (r *ErrorResponder) Internal(c *fiber.Ctx, err error) error {
	attrs := []any{
		"request_id", c.Locals("requestid"),
		"method", c.Method(),
		"path", c.Path(),
		"error", err.Error(),
	}
	if claims, ok := auth.ClaimsFrom(c); ok {
		attrs = append(attrs, "actor_id", claims.AccountID, "role", string(claims.Role))
	}
	slog.Error("request failed", attrs...)

	if hub := sentryfiber.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}

	resp := dto.ErrorResponse{Error: "Internal server error"}
	if r.exposeInternal {
		resp.Details = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(resp)
}

func statusFor(kind error) (int, bool) {
	switch {
	case errors.Is(kind, services.ErrValidation):
		return fiber.StatusBadRequest, true
	case errors.Is(kind, services.ErrUnauthorized):
		return fiber.StatusUnauthorized, true
	case errors.Is(kind, services.ErrForbidden):
		return fiber.StatusForbidden, true
	case errors.Is(kind, services.ErrNotFound):
		return fiber.StatusNotFound, true
	case errors.Is(kind, services.ErrConflict):
		return fiber.StatusConflict, true
	}
	return 0, false
}

// parseBody decodes the JSON body into out and validates it. An empty body
// decodes to the zero value so required-field violations are still reported.
// A field of the wrong JSON type does not stop decoding, so its violation is
// reported together with the rest of the body's.
func parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return validation.Struct(out)
	}
	err := c.BodyParser(out)
	if err == nil {
		return validation.Struct(out)
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return validation.Field("body", "must be JSON sent with Content-Type application/json")
	}
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Field == "" {
		return validation.FromDecodeError(err)
	}
	var rest validation.Errors
	if verr := validation.Struct(out); verr != nil && !errors.As(verr, &rest) {
		return verr
	}
	return validation.Merge(validation.FromDecodeError(err), rest)
}

func parseID(c *fiber.Ctx, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(param))
	if err != nil {
		return uuid.Nil, validation.Field(param, "must be a valid UUID")
	}
	return id, nil
}

func actorID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := auth.ActorID(c)
	if err != nil {
		return uuid.Nil, &services.Error{Kind: services.ErrUnauthorized, Message: "Unauthorized"}
	}
	return id, nil
}
