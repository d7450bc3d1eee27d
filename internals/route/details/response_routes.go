package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mysteryshopper_backend/internals/constants"
	respcontroller "mysteryshopper_backend/internals/features/surveys/responses/controller"
	authmw "mysteryshopper_backend/internals/middlewares/auth"
)

// ResponseRoutes: lifecycle response (khusus evaluator) + pembacaan ter-scope.
func ResponseRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := respcontroller.NewResponseController(db)

	evaluatorOnly := authmw.OnlyRolesSlice(constants.ErrOnlyEvaluatorsCanAccess, constants.EvaluatorOnly)

	responses := api.Group("/survey-responses")
	responses.Post("/start", evaluatorOnly, ctrl.Start)
	responses.Post("/:responseId/answer", evaluatorOnly, ctrl.UpsertAnswer)
	responses.Post("/:responseId/answer/:questionId/upload", evaluatorOnly, ctrl.UploadAnswerMedia)
	responses.Post("/:responseId/upload", evaluatorOnly, ctrl.UploadResponseMedia)
	responses.Post("/:responseId/submit", evaluatorOnly, ctrl.Submit)

	responses.Get("/", ctrl.List)
	responses.Get("/:responseId", ctrl.GetByID)

	// delete self-otorisasi per role di handler (evaluator miliknya,
	// client per tenant, admin bebas + ?hard=true)
	responses.Delete("/:responseId", ctrl.Delete)
	responses.Delete("/:responseId/answer/:questionId", ctrl.DeleteAnswer)
	api.Delete("/media-files/:id", ctrl.DeleteMedia)
}
