package models

// Roadmap is a structured learning path. Learner completion lives in
// ProgressRecord.RoadmapProgress, keyed by Roadmap.ID.
type Roadmap struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Duration     string `json:"duration"`
	Phases       int    `json:"phases"`
	Lessons      int    `json:"lessons"`
	Difficulty   int    `json:"difficulty"` // 1 (beginner) .. 5
	Participants int    `json:"participants"`
}

var Roadmaps = []Roadmap{
	{
		ID:           "beginner",
		Title:        "Complete Beginner Journey",
		Description:  "Perfect introduction to Hindu scriptures for newcomers",
		Duration:     "3-6 months",
		Phases:       3,
		Lessons:      24,
		Difficulty:   1,
		Participants: 12847,
	},
	{
		ID:           "philosophy",
		Title:        "Philosophy & Wisdom Seeker",
		Description:  "Deep philosophical study and scholarly exploration",
		Duration:     "6-12 months",
		Phases:       4,
		Lessons:      48,
		Difficulty:   4,
		Participants: 5623,
	},
	{
		ID:           "devotional",
		Title:        "Devotional Heart Path",
		Description:  "Cultivating divine love and spiritual practice",
		Duration:     "4-8 months",
		Phases:       3,
		Lessons:      36,
		Difficulty:   2,
		Participants: 8934,
	},
	{
		ID:           "practical",
		Title:        "Practical Wisdom for Modern Life",
		Description:  "Applying ancient teachings to contemporary challenges",
		Duration:     "2-4 months",
		Phases:       2,
		Lessons:      16,
		Difficulty:   2,
		Participants: 15672,
	},
}

func FindRoadmap(id string) (Roadmap, bool) {
	for _, r := range Roadmaps {
		if r.ID == id {
			return r, true
		}
	}
	return Roadmap{}, false
}
