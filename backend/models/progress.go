package models

import "slices"

// ProgressRecord is the learner's persisted progress. Field names follow the
// blob layout stored under the progress key.
type ProgressRecord struct {
	TotalScore       int               `json:"totalScore"`
	LearningStreak   int               `json:"learningStreak"`
	TextsExplored    int               `json:"textsExplored"`
	StudyTime        int               `json:"studyTime"` // in minutes
	CompletedLessons []string          `json:"completedLessons"`
	QuizScores       map[string][]int  `json:"quizScores"`
	CurrentRoadmap   *string           `json:"currentRoadmap"`
	RoadmapProgress  map[string]int    `json:"roadmapProgress"`
	LastStudyDate    *string           `json:"lastStudyDate"`
	Achievements     []string          `json:"achievements"`
	Bookmarks        []string          `json:"bookmarks"`
	Notes            map[string]string `json:"notes"`
}

// DefaultProgress returns the record a learner starts with: counters at zero,
// empty collections, optional fields absent.
func DefaultProgress() ProgressRecord {
	return ProgressRecord{
		CompletedLessons: []string{},
		QuizScores:       map[string][]int{},
		RoadmapProgress:  map[string]int{},
		Achievements:     []string{},
		Bookmarks:        []string{},
		Notes:            map[string]string{},
	}
}

// Clone returns a deep copy that shares no slices or maps with p.
func (p ProgressRecord) Clone() ProgressRecord {
	out := p
	out.CompletedLessons = append([]string{}, p.CompletedLessons...)
	out.Achievements = append([]string{}, p.Achievements...)
	out.Bookmarks = append([]string{}, p.Bookmarks...)

	out.QuizScores = make(map[string][]int, len(p.QuizScores))
	for category, scores := range p.QuizScores {
		out.QuizScores[category] = append([]int{}, scores...)
	}
	out.RoadmapProgress = make(map[string]int, len(p.RoadmapProgress))
	for id, percent := range p.RoadmapProgress {
		out.RoadmapProgress[id] = percent
	}
	out.Notes = make(map[string]string, len(p.Notes))
	for id, note := range p.Notes {
		out.Notes[id] = note
	}
	if p.CurrentRoadmap != nil {
		roadmap := *p.CurrentRoadmap
		out.CurrentRoadmap = &roadmap
	}
	if p.LastStudyDate != nil {
		date := *p.LastStudyDate
		out.LastStudyDate = &date
	}
	return out
}

// Normalize restores the record invariants in place: nil collections become
// empty, set fields lose duplicates (first occurrence wins), roadmap
// percentages are clamped to [0,100] and negative counters are raised to zero.
func (p *ProgressRecord) Normalize() {
	p.CompletedLessons = uniqueStrings(p.CompletedLessons)
	p.Achievements = uniqueStrings(p.Achievements)
	p.Bookmarks = uniqueStrings(p.Bookmarks)

	if p.QuizScores == nil {
		p.QuizScores = map[string][]int{}
	}
	for category, scores := range p.QuizScores {
		if scores == nil {
			p.QuizScores[category] = []int{}
		}
	}
	if p.RoadmapProgress == nil {
		p.RoadmapProgress = map[string]int{}
	}
	for id, percent := range p.RoadmapProgress {
		p.RoadmapProgress[id] = ClampPercent(percent)
	}
	if p.Notes == nil {
		p.Notes = map[string]string{}
	}

	p.TotalScore = max(p.TotalScore, 0)
	p.LearningStreak = max(p.LearningStreak, 0)
	p.TextsExplored = max(p.TextsExplored, 0)
	p.StudyTime = max(p.StudyTime, 0)
}

// HasLesson reports whether lessonID is already completed.
func (p ProgressRecord) HasLesson(lessonID string) bool {
	return slices.Contains(p.CompletedLessons, lessonID)
}

// ClampPercent bounds a roadmap percentage to [0,100].
func ClampPercent(percent int) int {
	return min(max(percent, 0), 100)
}

// ProgressUpdate is a typed partial update: nil fields are left untouched,
// non-nil fields replace the current value.
type ProgressUpdate struct {
	TotalScore       *int               `json:"totalScore,omitempty"`
	LearningStreak   *int               `json:"learningStreak,omitempty"`
	TextsExplored    *int               `json:"textsExplored,omitempty"`
	StudyTime        *int               `json:"studyTime,omitempty"`
	CompletedLessons *[]string          `json:"completedLessons,omitempty"`
	QuizScores       *map[string][]int  `json:"quizScores,omitempty"`
	CurrentRoadmap   *string            `json:"currentRoadmap,omitempty"`
	RoadmapProgress  *map[string]int    `json:"roadmapProgress,omitempty"`
	LastStudyDate    *string            `json:"lastStudyDate,omitempty"`
	Achievements     *[]string          `json:"achievements,omitempty"`
	Bookmarks        *[]string          `json:"bookmarks,omitempty"`
	Notes            *map[string]string `json:"notes,omitempty"`
}

// HasNegativeCounter reports whether the update would set a counter below zero.
func (u ProgressUpdate) HasNegativeCounter() bool {
	for _, v := range []*int{u.TotalScore, u.LearningStreak, u.TextsExplored, u.StudyTime} {
		if v != nil && *v < 0 {
			return true
		}
	}
	return false
}

// ExtendsQuizHistory reports whether the supplied quiz scores keep every
// category of current, with its recorded scores as a prefix. Histories in
// current may only grow.
func (u ProgressUpdate) ExtendsQuizHistory(current map[string][]int) bool {
	if u.QuizScores == nil {
		return true
	}
	for category, history := range current {
		if len(history) == 0 {
			continue
		}
		next, ok := (*u.QuizScores)[category]
		if !ok || len(next) < len(history) || !slices.Equal(next[:len(history)], history) {
			return false
		}
	}
	return true
}

// HasNegativeQuizScore reports whether any supplied quiz score is below zero.
func (u ProgressUpdate) HasNegativeQuizScore() bool {
	if u.QuizScores == nil {
		return false
	}
	for _, history := range *u.QuizScores {
		if slices.ContainsFunc(history, func(score int) bool { return score < 0 }) {
			return true
		}
	}
	return false
}

// Apply merges the supplied fields into p. Values are copied so the record
// never aliases the caller's slices or maps.
func (u ProgressUpdate) Apply(p *ProgressRecord) {
	if u.TotalScore != nil {
		p.TotalScore = *u.TotalScore
	}
	if u.LearningStreak != nil {
		p.LearningStreak = *u.LearningStreak
	}
	if u.TextsExplored != nil {
		p.TextsExplored = *u.TextsExplored
	}
	if u.StudyTime != nil {
		p.StudyTime = *u.StudyTime
	}
	if u.CompletedLessons != nil {
		p.CompletedLessons = append([]string{}, (*u.CompletedLessons)...)
	}
	if u.QuizScores != nil {
		scores := make(map[string][]int, len(*u.QuizScores))
		for category, history := range *u.QuizScores {
			scores[category] = append([]int{}, history...)
		}
		p.QuizScores = scores
	}
	if u.CurrentRoadmap != nil {
		roadmap := *u.CurrentRoadmap
		p.CurrentRoadmap = &roadmap
	}
	if u.RoadmapProgress != nil {
		progress := make(map[string]int, len(*u.RoadmapProgress))
		for id, percent := range *u.RoadmapProgress {
			progress[id] = percent
		}
		p.RoadmapProgress = progress
	}
	if u.LastStudyDate != nil {
		date := *u.LastStudyDate
		p.LastStudyDate = &date
	}
	if u.Achievements != nil {
		p.Achievements = append([]string{}, (*u.Achievements)...)
	}
	if u.Bookmarks != nil {
		p.Bookmarks = append([]string{}, (*u.Bookmarks)...)
	}
	if u.Notes != nil {
		notes := make(map[string]string, len(*u.Notes))
		for id, note := range *u.Notes {
			notes[id] = note
		}
		p.Notes = notes
	}
}

func uniqueStrings(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
