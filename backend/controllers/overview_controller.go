package controllers

import (
	"cmp"
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"

	"vedaverse/backend/models"
	"vedaverse/backend/progress"
	"vedaverse/backend/utils"
)

const (
	KindText    = "text"
	KindQuiz    = "quiz"
	KindRoadmap = "roadmap"
	KindGroup   = "group"
)

type OverviewController struct {
	Store *progress.Store
}

func NewOverviewController(store *progress.Store) *OverviewController {
	return &OverviewController{Store: store}
}

// CatalogItem одна позиция каталога в результатах поиска
type CatalogItem struct {
	Kind        string `json:"kind"`
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Group       string `json:"group,omitempty"`
	Difficulty  int    `json:"difficulty"`
	Popularity  int    `json:"popularity"`
	Progress    int    `json:"progress"`
	Bookmarked  bool   `json:"bookmarked"`
}

// SearchCatalog godoc
// @Summary Search the catalog
// @Description Searches texts, quiz categories, roadmaps and study groups by title and description
// @Tags overview
// @Produce json
// @Param search query string false "Text to match"
// @Param kind query string false "text, quiz, roadmap or group"
// @Param group query string false "Text or study group category, e.g. Upanishads"
// @Param sort query string false "popularity (default), difficulty or title"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /overview/search [get]
func (oc *OverviewController) SearchCatalog(c *fiber.Ctx) error {
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))
	kind := c.Query("kind")
	group := c.Query("group")
	sortBy := c.Query("sort", "popularity")

	switch kind {
	case "", KindText, KindQuiz, KindRoadmap, KindGroup:
	default:
		return utils.BadRequest(c, "kind must be one of text, quiz, roadmap, group")
	}
	switch sortBy {
	case "popularity", "difficulty", "title":
	default:
		return utils.BadRequest(c, "sort must be one of popularity, difficulty, title")
	}

	items := oc.catalog()

	// Фильтрация
	result := make([]CatalogItem, 0, len(items))
	for _, item := range items {
		if kind != "" && item.Kind != kind {
			continue
		}
		if group != "" && !strings.EqualFold(item.Group, group) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Title), search) &&
			!strings.Contains(strings.ToLower(item.Description), search) {
			continue
		}
		result = append(result, item)
	}

	// Сортировка
	slices.SortStableFunc(result, func(a, b CatalogItem) int {
		switch sortBy {
		case "difficulty":
			return cmp.Compare(a.Difficulty, b.Difficulty)
		case "title":
			return cmp.Compare(a.Title, b.Title)
		default:
			return cmp.Compare(b.Popularity, a.Popularity)
		}
	})

	return utils.SuccessWithMeta(c, result, fiber.Map{"total": len(result)})
}

// catalog собирает все позиции с наложенным прогрессом ученика
func (oc *OverviewController) catalog() []CatalogItem {
	p := oc.Store.Progress()

	items := make([]CatalogItem, 0, len(models.Scriptures)+len(models.QuizCategories)+len(models.Roadmaps)+len(models.StudyGroups))
	for _, text := range models.Scriptures {
		items = append(items, CatalogItem{
			Kind:        KindText,
			ID:          text.ID,
			Title:       text.Title,
			Description: text.Description,
			Group:       text.Category,
			Difficulty:  text.Difficulty,
			Popularity:  text.Popularity,
			Bookmarked:  slices.Contains(p.Bookmarks, text.ID),
		})
	}
	for _, quiz := range models.QuizCategories {
		items = append(items, CatalogItem{
			Kind:        KindQuiz,
			ID:          quiz.ID,
			Title:       quiz.Title,
			Description: quiz.Description,
			Difficulty:  quiz.Difficulty,
			Popularity:  len(p.QuizScores[quiz.ID]),
		})
	}
	for _, roadmap := range models.Roadmaps {
		items = append(items, CatalogItem{
			Kind:        KindRoadmap,
			ID:          roadmap.ID,
			Title:       roadmap.Title,
			Description: roadmap.Description,
			Difficulty:  roadmap.Difficulty,
			Popularity:  roadmap.Participants,
			Progress:    p.RoadmapProgress[roadmap.ID],
		})
	}
	for _, group := range models.StudyGroups {
		items = append(items, CatalogItem{
			Kind:        KindGroup,
			ID:          group.ID,
			Title:       group.Name,
			Description: group.Description,
			Group:       group.Category,
			Difficulty:  group.Difficulty,
			Popularity:  group.Members,
		})
	}
	return items
}
