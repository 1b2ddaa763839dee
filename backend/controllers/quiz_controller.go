package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"vedaverse/backend/models"
	"vedaverse/backend/progress"
	"vedaverse/backend/utils"
)

type QuizController struct {
	Store  *progress.Store
	Logger *zap.Logger
}

func NewQuizController(store *progress.Store, logger *zap.Logger) *QuizController {
	return &QuizController{Store: store, Logger: logger}
}

// GetQuizzes godoc
// @Summary List quiz categories
// @Description Returns every quiz category with the learner's score history summary
// @Tags quizzes
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /quizzes [get]
func (qc *QuizController) GetQuizzes(c *fiber.Ctx) error {
	overview := qc.Store.Overview()

	result := make([]fiber.Map, 0, len(models.QuizCategories))
	for _, category := range models.QuizCategories {
		stats := overview.QuizStats[category.ID]
		result = append(result, fiber.Map{
			"id":          category.ID,
			"title":       category.Title,
			"description": category.Description,
			"questions":   category.Questions,
			"difficulty":  category.Difficulty,
			"time_limit":  category.TimeLimit,
			"points":      category.Points,
			"attempts":    stats.Attempts,
			"best_score":  stats.Best,
			"last_score":  stats.Latest,
		})
	}

	return utils.Success(c, fiber.StatusOK, result)
}

// SubmitAnswer godoc
// @Summary Score one answer
// @Description Awards base points plus a speed bonus for a correct answer
// @Tags quizzes
// @Accept json
// @Produce json
// @Param category path string true "Quiz category ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /quizzes/{category}/answers [post]
func (qc *QuizController) SubmitAnswer(c *fiber.Ctx) error {
	category, ok := models.FindQuizCategory(c.Params("category"))
	if !ok {
		return utils.NotFound(c, "Quiz category not found")
	}

	var input struct {
		Correct  bool `json:"correct"`
		TimeLeft int  `json:"time_left"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	points := category.AnswerPoints(input.Correct, input.TimeLeft)
	if points == 0 {
		return utils.Success(c, fiber.StatusOK, fiber.Map{
			"points":      0,
			"total_score": qc.Store.Progress().TotalScore,
		})
	}

	p, err := qc.Store.AddScore(c.UserContext(), points)
	if err != nil {
		return utils.ProgressError(c, qc.Logger, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"points":      points,
		"total_score": p.TotalScore,
	})
}

// CompleteQuiz godoc
// @Summary Finish a quiz
// @Description Records the quiz score in the category history and counts today as a study day
// @Tags quizzes
// @Accept json
// @Produce json
// @Param category path string true "Quiz category ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /quizzes/{category}/complete [post]
func (qc *QuizController) CompleteQuiz(c *fiber.Ctx) error {
	category, ok := models.FindQuizCategory(c.Params("category"))
	if !ok {
		return utils.NotFound(c, "Quiz category not found")
	}

	var input struct {
		Score *int `json:"score"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Score == nil {
		return utils.BadRequest(c, "score is required")
	}

	p, err := qc.Store.CompleteQuiz(c.UserContext(), category.ID, *input.Score)
	if err != nil {
		return utils.ProgressError(c, qc.Logger, err)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"message":  "Quiz completed",
		"scores":   p.QuizScores[category.ID],
		"progress": p,
	})
}
