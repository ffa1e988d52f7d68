package middleware

import (
	"github.com/Xenn-00/kapazitaets-meister/internal/dtos"
	rbac_case "github.com/Xenn-00/kapazitaets-meister/internal/use-cases/rbac-case"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// RequirePermission load die effektive Berechtigungsmenge des Benutzers
// (Redis-gecacht) und lässt die Anfrage nur durch, wenn der geforderte Key
// enthalten ist. Muss hinter AuthMiddleware laufen.
func RequirePermission(rbac rbac_case.RbacServiceContract, permissionKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("user_id").(string)
		if !ok || userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status": "error",
				"error": dtos.ErrorResponse{
					Code:    fiber.StatusUnauthorized,
					Message: "Kein Zugriff, Benutzer unbekannt.",
				},
			})
		}

		allowed, err := rbac.HasPermission(c.Context(), userID, permissionKey)
		if err != nil {
			log.Error().Err(err.Err).Str("permission", permissionKey).Msg("Berechtigungsprüfung fehlgeschlagen")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status": "error",
				"error": dtos.ErrorResponse{
					Code:    fiber.StatusInternalServerError,
					Message: "Berechtigungsprüfung fehlgeschlagen.",
				},
			})
		}

		if allowed {
			return c.Next()
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"status": "error",
			"error": dtos.ErrorResponse{
				Code:    fiber.StatusForbidden,
				Message: "Sie haben hier nicht zu melden",
				Field:   permissionKey,
			},
		})
	}
}
