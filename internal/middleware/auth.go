package middleware

import (
	"strings"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/gofiber/fiber/v2"

	"github.com/Griffinitto/Tour-Booking-Platform/internal/config"
	"github.com/Griffinitto/Tour-Booking-Platform/pkg/auth"
)

// OptionalAuth attaches an identity to the request when a valid Bearer
// token is present and passes the request through either way. The tour
// endpoints are public and query resolution never depends on who is asking.
// With a Firebase auth client the token is verified as a Firebase ID token;
// without one (local/proxy mode) it is validated as an HS256 JWT against
// JWT_SECRET_KEY.
func OptionalAuth(cfg *config.Config, verifier *firebaseauth.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Next()
		}
		token := parts[1]

		if verifier != nil {
			decoded, err := verifier.VerifyIDToken(c.UserContext(), token)
			if err != nil {
				return c.Next()
			}
			c.Locals("userID", decoded.UID)
			return c.Next()
		}

		claims, err := auth.ValidateAccessToken(token, cfg.JWTSecretKey)
		if err != nil {
			return c.Next()
		}
		c.Locals("userID", claims.UserID)
		return c.Next()
	}
}
