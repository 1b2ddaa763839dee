package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vedaverse/backend/models"
)

func TestSummarize(t *testing.T) {
	now := time.Date(2026, time.March, 11, 8, 0, 0, 0, time.UTC)
	overview := Summarize(populatedRecord(), now)

	assert.Equal(t, 340, overview.TotalScore)
	assert.Equal(t, 6, overview.LearningStreak)
	assert.True(t, overview.StreakActive, "last study day was yesterday")
	assert.Equal(t, 90, overview.StudyTime)
	assert.Equal(t, 4, overview.TextsExplored)
	assert.Equal(t, 2, overview.LessonsCompleted)
	assert.Equal(t, 1, overview.Achievements)
	assert.Equal(t, 2, overview.Bookmarks)
	assert.Equal(t, 1, overview.Notes)
	assert.Equal(t, 4, overview.QuizzesTaken)
	assert.Equal(t, models.QuizStats{Attempts: 3, Best: 70, Latest: 70, Average: 33.33, Total: 100}, overview.QuizStats["general"])
	assert.Equal(t, models.QuizStats{Attempts: 1}, overview.QuizStats["expert"])
	assert.Equal(t, "devotional", overview.CurrentRoadmap)
	assert.Equal(t, 65, overview.CurrentRoadmapPct)
	assert.Equal(t, []string{"beginner"}, overview.CompletedRoadmaps)
}

func TestSummarizeStreakActivity(t *testing.T) {
	date := "2026-03-10"
	p := models.DefaultProgress()
	p.LearningStreak = 3
	p.LastStudyDate = &date

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"SameDay", time.Date(2026, time.March, 10, 22, 0, 0, 0, time.UTC), true},
		{"NextDay", time.Date(2026, time.March, 11, 22, 0, 0, 0, time.UTC), true},
		{"GapDay", time.Date(2026, time.March, 12, 1, 0, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(p, tt.now).StreakActive)
		})
	}
}

func TestSummarizeDefault(t *testing.T) {
	overview := Summarize(models.DefaultProgress(), time.Now())

	assert.False(t, overview.StreakActive)
	assert.Empty(t, overview.QuizStats)
	assert.Empty(t, overview.CurrentRoadmap)
	assert.Equal(t, []string{}, overview.CompletedRoadmaps)
}
