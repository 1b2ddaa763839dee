package models

// QuizStats summarizes one category's score history.
type QuizStats struct {
	Attempts int     `json:"attempts"`
	Best     int     `json:"best"`
	Latest   int     `json:"latest"`
	Average  float64 `json:"average"`
	Total    int     `json:"total"`
}

// ProgressOverview is derived from a ProgressRecord and never persisted.
type ProgressOverview struct {
	TotalScore        int                  `json:"total_score"`
	LearningStreak    int                  `json:"learning_streak"`
	StreakActive      bool                 `json:"streak_active"`
	StudyTime         int                  `json:"study_time"`
	TextsExplored     int                  `json:"texts_explored"`
	LessonsCompleted  int                  `json:"lessons_completed"`
	Achievements      int                  `json:"achievements"`
	Bookmarks         int                  `json:"bookmarks"`
	Notes             int                  `json:"notes"`
	QuizzesTaken      int                  `json:"quizzes_taken"`
	QuizStats         map[string]QuizStats `json:"quiz_stats"`
	CurrentRoadmap    string               `json:"current_roadmap,omitempty"`
	CurrentRoadmapPct int                  `json:"current_roadmap_progress"`
	CompletedRoadmaps []string             `json:"completed_roadmaps"`
}
