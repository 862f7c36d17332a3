package handler

import (
	"quizforge/internal/domain"
	"quizforge/internal/dto"
	"quizforge/internal/middleware"
	"quizforge/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ResultHandler handles submissions and result listings.
type ResultHandler struct {
	results service.ResultService
}

// NewResultHandler creates a new ResultHandler instance
func NewResultHandler(results service.ResultService) *ResultHandler {
	return &ResultHandler{results: results}
}

// Submit godoc
// @Summary Submit answers
// @Description Grades the answers, stores the score and returns per-question details with explanations.
// @Tags results
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param quizId path string true "Quiz ID"
// @Param request body dto.SubmitAnswersRequest true "Answers"
// @Success 200 {object} dto.SubmitAnswersResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /results/{quizId}/submit [post]
func (h *ResultHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitAnswersRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.results.Submit(c.UserContext(), middleware.UserID(c), c.Params("quizId"), req.Answers)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// MyResults godoc
// @Summary List my results
// @Tags results
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} dto.ResultResponse
// @Router /results/my [get]
func (h *ResultHandler) MyResults(c *fiber.Ctx) error {
	results, err := h.results.MyResults(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(results)
}

// QuizResults godoc
// @Summary List results of a quiz
// @Tags results
// @Produce json
// @Security ApiKeyAuth
// @Param quizId path string true "Quiz ID"
// @Success 200 {array} dto.ResultResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /results/quiz/{quizId} [get]
func (h *ResultHandler) QuizResults(c *fiber.Ctx) error {
	results, err := h.results.QuizResults(c.UserContext(), c.Params("quizId"))
	if err != nil {
		return err
	}
	return c.JSON(results)
}
