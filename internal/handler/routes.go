package handler

import (
	"quizforge/internal/auth"
	"quizforge/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups the route handlers registered by RegisterRoutes.
type Handlers struct {
	Quiz   *QuizHandler
	Result *ResultHandler
	Health *HealthHandler
}

// RegisterRoutes mounts the API under /api.
func RegisterRoutes(app *fiber.App, h Handlers, verifier middleware.TokenVerifier) {
	api := app.Group("/api")
	api.Get("/health", h.Health.Health)

	protected := middleware.Protected(verifier)
	teacher := middleware.AuthorizeRoles(auth.RoleTeacher)
	student := middleware.AuthorizeRoles(auth.RoleStudent)

	quizzes := api.Group("/quizzes", protected)
	quizzes.Post("/ai-generate", teacher, h.Quiz.GenerateQuiz)
	quizzes.Post("/explain", h.Quiz.Explain)
	quizzes.Post("/", teacher, h.Quiz.CreateQuiz)
	quizzes.Get("/", h.Quiz.ListQuizzes)
	quizzes.Get("/:id", h.Quiz.GetQuiz)
	quizzes.Put("/:id", teacher, h.Quiz.UpdateQuiz)
	quizzes.Delete("/:id", teacher, h.Quiz.DeleteQuiz)

	results := api.Group("/results", protected)
	results.Get("/my", student, h.Result.MyResults)
	results.Get("/quiz/:quizId", teacher, h.Result.QuizResults)
	results.Post("/:quizId/submit", student, h.Result.Submit)
}
