package auth

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"mysteryshopper_backend/internals/configs"
	helper "mysteryshopper_backend/internals/helpers"
)

// AuthMiddleware memvalidasi access token dan menaruh klaim di Locals:
// user_id, user_role, user_email, dan company_id (jika ada di token).
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rawToken := helper.GetRawAccessToken(c)
		if rawToken == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak ditemukan")
		}

		token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "metode signing tidak valid")
			}
			return []byte(configs.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			log.Printf("[ERROR] Token tidak valid: %v", err)
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid atau sudah kedaluwarsa")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Klaim token tidak valid")
		}

		// Cek expiry secara eksplisit
		if exp, ok := claims["exp"].(float64); ok {
			if time.Now().After(time.Unix(int64(exp), 0)) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Token sudah kedaluwarsa")
			}
		}

		userID, _ := claims["sub"].(string)
		if userID == "" {
			// fallback klaim lama
			userID, _ = claims["id"].(string)
		}
		if userID == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak memuat identitas user")
		}

		role, _ := claims["role"].(string)
		email, _ := claims["email"].(string)

		c.Locals("user_id", userID)
		c.Locals("user_role", strings.ToLower(role))
		c.Locals("user_email", email)

		if companyID, ok := claims["company_id"].(string); ok && companyID != "" {
			c.Locals("company_id", companyID)
		}

		helper.SetRawAccessToken(c, rawToken)

		return c.Next()
	}
}
