package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"vedaverse/backend/models"
	"vedaverse/backend/progress"
	"vedaverse/backend/utils"
)

type ProgressController struct {
	Store  *progress.Store
	Logger *zap.Logger
}

func NewProgressController(store *progress.Store, logger *zap.Logger) *ProgressController {
	return &ProgressController{Store: store, Logger: logger}
}

// GetProgress godoc
// @Summary Get learner progress
// @Description Returns the full persisted progress record
// @Tags progress
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /progress [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, pc.Store.Progress())
}

// GetProgressOverview godoc
// @Summary Get progress overview
// @Description Returns statistics derived from the progress record
// @Tags progress
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /progress/overview [get]
func (pc *ProgressController) GetProgressOverview(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, pc.Store.Overview())
}

// UpdateProgress godoc
// @Summary Partially update progress
// @Description Replaces the supplied top-level fields, leaving the rest untouched
// @Tags progress
// @Accept json
// @Produce json
// @Param input body models.ProgressUpdate true "Fields to replace"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /progress [patch]
func (pc *ProgressController) UpdateProgress(c *fiber.Ctx) error {
	var input models.ProgressUpdate
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	p, err := pc.Store.UpdateProgress(c.UserContext(), input)
	if err != nil {
		return utils.ProgressError(c, pc.Logger, err)
	}
	return utils.Success(c, fiber.StatusOK, p)
}

// ResetProgress godoc
// @Summary Reset progress
// @Description Replaces the record with the default one
// @Tags progress
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /progress [delete]
func (pc *ProgressController) ResetProgress(c *fiber.Ctx) error {
	p, err := pc.Store.Reset(c.UserContext())
	if err != nil {
		return utils.ProgressError(c, pc.Logger, err)
	}
	return utils.Success(c, fiber.StatusOK, p)
}

func (pc *ProgressController) AddScore(c *fiber.Ctx) error {
	var input struct {
		Points *int `json:"points"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Points == nil {
		return utils.BadRequest(c, "points is required")
	}

	p, err := pc.Store.AddScore(c.UserContext(), *input.Points)
	if err != nil {
		return utils.ProgressError(c, pc.Logger, err)
	}
	return utils.Success(c, fiber.StatusOK, p)
}

func (pc *ProgressController) UpdateStreak(c *fiber.Ctx) error {
	p, err := pc.Store.UpdateStreak(c.UserContext())
	if err != nil {
		return utils.ProgressError(c, pc.Logger, err)
	}
	return utils.Success(c, fiber.StatusOK, p)
}

func (pc *ProgressController) AddAchievement(c *fiber.Ctx) error {
	var input struct {
		ID string `json:"id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.ID == "" {
		return utils.BadRequest(c, "id is required")
	}

	p, err := pc.Store.AddAchievement(c.UserContext(), input.ID)
	if err != nil {
		return utils.ProgressError(c, pc.Logger, err)
	}
	return utils.Success(c, fiber.StatusOK, p)
}
