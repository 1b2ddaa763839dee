package models

// QuizCategory is a named group of quiz questions with its own score history.
type QuizCategory struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Questions   int    `json:"questions"`
	Difficulty  int    `json:"difficulty"` // 1 (easy) .. 5 (expert)
	TimeLimit   int    `json:"time_limit"` // seconds per question
	Points      int    `json:"points"`     // base points per correct answer
}

// AnswerPoints returns the points awarded for one answer. A correct answer
// earns the base points plus two points per second left on the clock.
func (q QuizCategory) AnswerPoints(correct bool, timeLeft int) int {
	if !correct {
		return 0
	}
	timeLeft = min(max(timeLeft, 0), q.TimeLimit)
	return q.Points + timeLeft*2
}

var QuizCategories = []QuizCategory{
	{
		ID:          "general",
		Title:       "General Knowledge",
		Description: "Basic concepts, text identification, key teachings",
		Questions:   50,
		Difficulty:  2,
		TimeLimit:   30,
		Points:      10,
	},
	{
		ID:          "advanced",
		Title:       "Advanced Concepts",
		Description: "Complex philosophy, Sanskrit terminology, scholarly interpretations",
		Questions:   40,
		Difficulty:  4,
		TimeLimit:   45,
		Points:      20,
	},
	{
		ID:          "practical",
		Title:       "Practical Application",
		Description: "Ethics, meditation, ritual understanding, modern relevance",
		Questions:   35,
		Difficulty:  3,
		TimeLimit:   30,
		Points:      15,
	},
	{
		ID:          "cultural",
		Title:       "Cultural Context",
		Description: "Festivals, traditions, regional variations, historical context",
		Questions:   30,
		Difficulty:  2,
		TimeLimit:   25,
		Points:      10,
	},
	{
		ID:          "expert",
		Title:       "Expert Challenge",
		Description: "Rare texts, complex interpretations, advanced Sanskrit",
		Questions:   25,
		Difficulty:  5,
		TimeLimit:   60,
		Points:      50,
	},
}

func FindQuizCategory(id string) (QuizCategory, bool) {
	for _, c := range QuizCategories {
		if c.ID == id {
			return c, true
		}
	}
	return QuizCategory{}, false
}
