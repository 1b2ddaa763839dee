package progress

import (
	"math"
	"sort"
	"time"

	"vedaverse/backend/models"
)

// Summarize derives the dashboard statistics of p as seen at now.
func Summarize(p models.ProgressRecord, now time.Time) models.ProgressOverview {
	overview := models.ProgressOverview{
		TotalScore:        p.TotalScore,
		LearningStreak:    p.LearningStreak,
		StreakActive:      streakActive(p, now),
		StudyTime:         p.StudyTime,
		TextsExplored:     p.TextsExplored,
		LessonsCompleted:  len(p.CompletedLessons),
		Achievements:      len(p.Achievements),
		Bookmarks:         len(p.Bookmarks),
		Notes:             len(p.Notes),
		QuizStats:         make(map[string]models.QuizStats, len(p.QuizScores)),
		CompletedRoadmaps: []string{},
	}

	for category, scores := range p.QuizScores {
		if len(scores) == 0 {
			continue
		}
		stats := models.QuizStats{
			Attempts: len(scores),
			Best:     scores[0],
			Latest:   scores[len(scores)-1],
		}
		for _, score := range scores {
			stats.Total += score
			stats.Best = max(stats.Best, score)
		}
		stats.Average = math.Round(float64(stats.Total)/float64(stats.Attempts)*100) / 100
		overview.QuizStats[category] = stats
		overview.QuizzesTaken += stats.Attempts
	}

	if p.CurrentRoadmap != nil {
		overview.CurrentRoadmap = *p.CurrentRoadmap
		overview.CurrentRoadmapPct = p.RoadmapProgress[*p.CurrentRoadmap]
	}
	for id, percent := range p.RoadmapProgress {
		if percent >= 100 {
			overview.CompletedRoadmaps = append(overview.CompletedRoadmaps, id)
		}
	}
	sort.Strings(overview.CompletedRoadmaps)

	return overview
}

// streakActive reports whether the streak can still be extended: the last
// study day is today or yesterday.
func streakActive(p models.ProgressRecord, now time.Time) bool {
	if p.LastStudyDate == nil || p.LearningStreak == 0 {
		return false
	}
	last := *p.LastStudyDate
	return last == now.Format(DateLayout) || last == now.AddDate(0, 0, -1).Format(DateLayout)
}
