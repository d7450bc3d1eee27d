package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mysteryshopper_backend/internals/constants"
	asgcontroller "mysteryshopper_backend/internals/features/surveys/assignments/controller"
	tplcontroller "mysteryshopper_backend/internals/features/surveys/templates/controller"
	authmw "mysteryshopper_backend/internals/middlewares/auth"
)

// SurveyRoutes: template + pertanyaan + assignment.
func SurveyRoutes(api fiber.Router, db *gorm.DB) {
	tplCtrl := tplcontroller.NewTemplateController(db)
	questionCtrl := tplcontroller.NewQuestionController(db)
	asgCtrl := asgcontroller.NewAssignmentController(db)

	adminOrClient := authmw.OnlyRolesSlice(constants.ErrOnlyAdminsOrClientsCanAccess, constants.AdminAndClient)

	templates := api.Group("/survey-templates", adminOrClient)
	templates.Post("/", tplCtrl.Create)
	templates.Get("/", tplCtrl.List)
	templates.Get("/:id", tplCtrl.GetByID)
	templates.Put("/:id", tplCtrl.Update)
	templates.Delete("/:id", tplCtrl.Delete)
	templates.Post("/:templateId/questions", questionCtrl.Create)

	questions := api.Group("/questions", adminOrClient)
	questions.Put("/:id", questionCtrl.Update)
	questions.Delete("/:id", questionCtrl.Delete)

	// evaluator boleh baca assignment miliknya; mutasi tetap admin/client
	assignments := api.Group("/survey-assignments")
	assignments.Post("/", adminOrClient, asgCtrl.Create)
	assignments.Get("/", asgCtrl.List)
	assignments.Get("/:id", asgCtrl.GetByID)
	assignments.Get("/:id/survey", asgCtrl.GetSurvey)
	assignments.Delete("/:id", adminOrClient, asgCtrl.Delete)
}
