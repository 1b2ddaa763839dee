package controllers

import (
	"slices"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"vedaverse/backend/models"
	"vedaverse/backend/progress"
	"vedaverse/backend/utils"
)

type LibraryController struct {
	Store  *progress.Store
	Logger *zap.Logger
}

func NewLibraryController(store *progress.Store, logger *zap.Logger) *LibraryController {
	return &LibraryController{Store: store, Logger: logger}
}

// SaveNoteRequest defines the request body for saving a note
type SaveNoteRequest struct {
	Note string `json:"note" example:"Chapter 2 verse 47 on detached action"`
}

// GetTexts godoc
// @Summary List library texts
// @Description Returns the scripture library with bookmark and note flags
// @Tags library
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /texts [get]
func (lc *LibraryController) GetTexts(c *fiber.Ctx) error {
	p := lc.Store.Progress()

	result := make([]fiber.Map, 0, len(models.Scriptures))
	for _, text := range models.Scriptures {
		_, hasNote := p.Notes[text.ID]
		result = append(result, fiber.Map{
			"id":             text.ID,
			"title":          text.Title,
			"description":    text.Description,
			"verses":         text.Verses,
			"estimated_time": text.EstimatedTime,
			"difficulty":     text.Difficulty,
			"category":       text.Category,
			"popularity":     text.Popularity,
			"bookmarked":     slices.Contains(p.Bookmarks, text.ID),
			"has_note":       hasNote,
		})
	}

	return utils.Success(c, fiber.StatusOK, result)
}

// ReadText godoc
// @Summary Open a text in the reader
// @Description Counts the text as explored and today as a study day
// @Tags library
// @Produce json
// @Param id path string true "Text ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /texts/{id}/read [post]
func (lc *LibraryController) ReadText(c *fiber.Ctx) error {
	text, ok := models.FindScripture(c.Params("id"))
	if !ok {
		return utils.NotFound(c, "Text not found")
	}

	p, err := lc.Store.ReadText(c.UserContext())
	if err != nil {
		return utils.ProgressError(c, lc.Logger, err)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"text":            text,
		"note":            p.Notes[text.ID],
		"bookmarked":      slices.Contains(p.Bookmarks, text.ID),
		"texts_explored":  p.TextsExplored,
		"learning_streak": p.LearningStreak,
	})
}

// AddBookmark добавляет текст в закладки
func (lc *LibraryController) AddBookmark(c *fiber.Ctx) error {
	text, ok := models.FindScripture(c.Params("id"))
	if !ok {
		return utils.NotFound(c, "Text not found")
	}

	p, err := lc.Store.AddBookmark(c.UserContext(), text.ID)
	if err != nil {
		return utils.ProgressError(c, lc.Logger, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"bookmarks": p.Bookmarks})
}

// RemoveBookmark удаляет текст из закладок
func (lc *LibraryController) RemoveBookmark(c *fiber.Ctx) error {
	text, ok := models.FindScripture(c.Params("id"))
	if !ok {
		return utils.NotFound(c, "Text not found")
	}

	p, err := lc.Store.RemoveBookmark(c.UserContext(), text.ID)
	if err != nil {
		return utils.ProgressError(c, lc.Logger, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"bookmarks": p.Bookmarks})
}

// GetNote возвращает заметку к тексту
func (lc *LibraryController) GetNote(c *fiber.Ctx) error {
	text, ok := models.FindScripture(c.Params("id"))
	if !ok {
		return utils.NotFound(c, "Text not found")
	}

	note, ok := lc.Store.Progress().Notes[text.ID]
	if !ok {
		return utils.NotFound(c, "Note not found")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"text_id": text.ID, "note": note})
}

// SaveNote godoc
// @Summary Save a note for a text
// @Description Stores free-text notes for a text; an empty note removes it
// @Tags library
// @Accept json
// @Produce json
// @Param id path string true "Text ID"
// @Param input body SaveNoteRequest true "Note"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /texts/{id}/note [put]
func (lc *LibraryController) SaveNote(c *fiber.Ctx) error {
	text, ok := models.FindScripture(c.Params("id"))
	if !ok {
		return utils.NotFound(c, "Text not found")
	}

	var input SaveNoteRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	p, err := lc.Store.SaveNote(c.UserContext(), text.ID, input.Note)
	if err != nil {
		return utils.ProgressError(c, lc.Logger, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"text_id": text.ID, "note": p.Notes[text.ID]})
}
