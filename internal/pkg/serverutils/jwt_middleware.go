// FILE: internal/pkg/serverutils/jwt_middleware.go
package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Identity is the caller resolved from the bearer token. Claims are trusted
// for the token's lifetime; the user record is not re-fetched.
type Identity struct {
	UserId uuid.UUID
	Email  string
	Name   string
}

// NewJwtMiddleware builds the auth gate for protected routes. Missing,
// malformed, badly signed and expired tokens all get the same 401.
func NewJwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
		}
		tokenStr := authHeader[7:]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
		}

		ctx.Locals("user_id", claims["user_id"])
		ctx.Locals("user_email", claims["user"])
		ctx.Locals("user_name", claims["name"])
		return ctx.Next()
	}
}

// IdentityFromCtx reads the identity the middleware attached.
func IdentityFromCtx(ctx *fiber.Ctx) Identity {
	identity := Identity{}
	if v, ok := ctx.Locals("user_id").(string); ok {
		identity.UserId, _ = uuid.Parse(v)
	}
	if v, ok := ctx.Locals("user_email").(string); ok {
		identity.Email = v
	}
	if v, ok := ctx.Locals("user_name").(string); ok {
		identity.Name = v
	}
	return identity
}
