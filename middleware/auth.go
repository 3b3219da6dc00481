package middleware

import (
	"strings"

	"guestbook-api/pkg"

	"github.com/gofiber/fiber/v2"
)

// ClaimsKey es la clave bajo la que queda la identidad en la request.
const ClaimsKey = "user"

// Protected autentica la request. Sin encabezado Authorization responde 403;
// con token presente pero inválido o vencido responde 401. Son fallas
// distintas y no se mezclan.
func Protected(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"mensaje": "Token requerido.",
			})
		}

		// El token es la segunda parte del encabezado, el esquema se ignora
		parts := strings.Fields(header)
		if len(parts) < 2 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"mensaje": "Token inválido.",
			})
		}

		claims, err := pkg.ParseToken(secret, parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"mensaje": "Token inválido.",
			})
		}

		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}

// RequireRoles deja pasar solo a los roles permitidos para la ruta. El
// control fino por dueño del recurso se hace en cada handler.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := ClaimsFrom(c)
		if claims != nil {
			for _, role := range roles {
				if claims.Role == role {
					return c.Next()
				}
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Acceso no autorizado.",
		})
	}
}

// ClaimsFrom recupera la identidad autenticada de la request.
func ClaimsFrom(c *fiber.Ctx) *pkg.Claims {
	claims, _ := c.Locals(ClaimsKey).(*pkg.Claims)
	return claims
}
