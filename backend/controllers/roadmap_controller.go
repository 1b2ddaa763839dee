package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"vedaverse/backend/config"
	"vedaverse/backend/models"
	"vedaverse/backend/progress"
	"vedaverse/backend/utils"
)

type RoadmapController struct {
	Store  *progress.Store
	Cfg    *config.Config
	Logger *zap.Logger
}

func NewRoadmapController(store *progress.Store, cfg *config.Config, logger *zap.Logger) *RoadmapController {
	return &RoadmapController{Store: store, Cfg: cfg, Logger: logger}
}

// GetRoadmaps возвращает каталог роадмапов с прогрессом ученика
func (rc *RoadmapController) GetRoadmaps(c *fiber.Ctx) error {
	p := rc.Store.Progress()

	result := make([]fiber.Map, 0, len(models.Roadmaps))
	for _, roadmap := range models.Roadmaps {
		result = append(result, fiber.Map{
			"id":           roadmap.ID,
			"title":        roadmap.Title,
			"description":  roadmap.Description,
			"duration":     roadmap.Duration,
			"phases":       roadmap.Phases,
			"lessons":      roadmap.Lessons,
			"difficulty":   roadmap.Difficulty,
			"participants": roadmap.Participants,
			"progress":     p.RoadmapProgress[roadmap.ID],
			"current":      p.CurrentRoadmap != nil && *p.CurrentRoadmap == roadmap.ID,
		})
	}

	return utils.Success(c, fiber.StatusOK, result)
}

// StartRoadmap делает роадмап текущим; уже набранный прогресс сохраняется
func (rc *RoadmapController) StartRoadmap(c *fiber.Ctx) error {
	roadmap, ok := models.FindRoadmap(c.Params("id"))
	if !ok {
		return utils.NotFound(c, "Roadmap not found")
	}

	p, err := rc.Store.SetRoadmap(c.UserContext(), roadmap.ID)
	if err != nil {
		return utils.ProgressError(c, rc.Logger, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"message":  "Roadmap started",
		"roadmap":  roadmap,
		"progress": p.RoadmapProgress[roadmap.ID],
	})
}

// UpdateRoadmapProgress godoc
// @Summary Set roadmap completion
// @Description Overwrites the roadmap percentage; values outside 0..100 are clamped
// @Tags roadmaps
// @Accept json
// @Produce json
// @Param id path string true "Roadmap ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /roadmaps/{id}/progress [put]
func (rc *RoadmapController) UpdateRoadmapProgress(c *fiber.Ctx) error {
	roadmap, ok := models.FindRoadmap(c.Params("id"))
	if !ok {
		return utils.NotFound(c, "Roadmap not found")
	}

	var input struct {
		Percent *int `json:"percent"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Percent == nil {
		return utils.BadRequest(c, "percent is required")
	}

	p, err := rc.Store.UpdateRoadmapProgress(c.UserContext(), roadmap.ID, *input.Percent)
	if err != nil {
		return utils.ProgressError(c, rc.Logger, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"message":  "Progress updated",
		"progress": p.RoadmapProgress[roadmap.ID],
	})
}

// CompleteLesson отмечает урок пройденным; время учебы начисляется один раз
func (rc *RoadmapController) CompleteLesson(c *fiber.Ctx) error {
	lessonID := c.Params("id")

	before := rc.Store.Progress().HasLesson(lessonID)
	p, err := rc.Store.CompleteLesson(c.UserContext(), lessonID)
	if err != nil {
		return utils.ProgressError(c, rc.Logger, err)
	}

	credited := rc.Cfg.LessonMinutes
	if before {
		credited = 0
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"message":           "Lesson completed",
		"already_completed": before,
		"lessons_completed": len(p.CompletedLessons),
		"minutes_credited":  credited,
		"study_time":        p.StudyTime,
	})
}
