package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mysteryshopper_backend/internals/constants"
	tenantcontroller "mysteryshopper_backend/internals/features/tenants/controller"
	authmw "mysteryshopper_backend/internals/middlewares/auth"
)

// TenantRoutes: company / agency / employee.
// Pembuatan company hanya admin; sisanya admin + client (ownership check
// tenant tetap jalan di controller meski role lolos).
func TenantRoutes(api fiber.Router, db *gorm.DB) {
	companyCtrl := tenantcontroller.NewCompanyController(db)
	agencyCtrl := tenantcontroller.NewAgencyController(db)
	employeeCtrl := tenantcontroller.NewEmployeeController(db)

	adminOnly := authmw.OnlyRolesSlice(constants.ErrOnlyAdminsCanAccess, constants.AdminOnly)
	adminOrClient := authmw.OnlyRolesSlice(constants.ErrOnlyAdminsOrClientsCanAccess, constants.AdminAndClient)

	companies := api.Group("/companies", adminOrClient)
	companies.Post("/", adminOnly, companyCtrl.Create)
	companies.Get("/", companyCtrl.List)
	companies.Get("/:id", companyCtrl.GetByID)
	companies.Put("/:id", companyCtrl.Update)
	companies.Delete("/:id", companyCtrl.Delete)

	agencies := api.Group("/agencies", adminOrClient)
	agencies.Post("/", agencyCtrl.Create)
	agencies.Get("/", agencyCtrl.List)
	agencies.Get("/:id", agencyCtrl.GetByID)
	agencies.Put("/:id", agencyCtrl.Update)
	agencies.Delete("/:id", agencyCtrl.Delete)

	employees := api.Group("/employees", adminOrClient)
	employees.Post("/", employeeCtrl.Create)
	employees.Get("/", employeeCtrl.List)
	employees.Get("/:id", employeeCtrl.GetByID)
	employees.Put("/:id", employeeCtrl.Update)
	employees.Delete("/:id", employeeCtrl.Delete)
}
