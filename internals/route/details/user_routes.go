package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mysteryshopper_backend/internals/constants"
	usercontroller "mysteryshopper_backend/internals/features/users/user/controller"
	authmw "mysteryshopper_backend/internals/middlewares/auth"
)

// UserRoutes: provisioning user (admin & client; trust boundary di service).
func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := usercontroller.NewUserController(db)

	users := api.Group("/users",
		authmw.OnlyRolesSlice(constants.ErrOnlyAdminsOrClientsCanAccess, constants.AdminAndClient),
	)
	users.Post("/", ctrl.Create)
	users.Get("/", ctrl.List)
	users.Delete("/:id", ctrl.Deactivate)
}
