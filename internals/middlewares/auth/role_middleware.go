package auth

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	helper "mysteryshopper_backend/internals/helpers"
)

// OnlyRolesSlice membatasi akses route untuk daftar role tertentu.
func OnlyRolesSlice(errorMessage string, allowedRoles []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("user_role").(string)
		if !ok || role == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Role pengguna tidak ditemukan di token")
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		return helper.JsonError(c, fiber.StatusForbidden, fmt.Sprintf(errorMessage, role))
	}
}
