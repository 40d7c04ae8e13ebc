package serverutils

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type AccessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs a short-lived HS256 token carrying the user
// id as subject and the role as a custom claim.
func GenerateAccessToken(userId uuid.UUID, role, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userId.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// JwtMiddleware rejects requests without a valid Bearer token and
// stores user_id and role in the request locals for handlers.
func JwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return NewUnauthorized("missing or malformed authorization header")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &AccessClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return NewUnauthorized("invalid or expired token")
		}

		userId, err := uuid.Parse(claims.Subject)
		if err != nil {
			return NewUnauthorized("invalid token subject")
		}

		ctx.Locals("user_id", userId.String())
		ctx.Locals("role", claims.Role)
		return ctx.Next()
	}
}

// AdminMiddleware must run after JwtMiddleware.
func AdminMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role, _ := ctx.Locals("role").(string)
		if role != "admin" {
			return NewForbidden("admin access required")
		}
		return ctx.Next()
	}
}

// UserIdFromLocals returns the authenticated user's id set by
// JwtMiddleware.
func UserIdFromLocals(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := ctx.Locals("user_id").(string)
	userId, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, NewUnauthorized("missing authenticated user")
	}
	return userId, nil
}
