package progress

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vedaverse/backend/models"
)

func populatedRecord() models.ProgressRecord {
	roadmap := "devotional"
	date := "2026-03-10"
	return models.ProgressRecord{
		TotalScore:       340,
		LearningStreak:   6,
		TextsExplored:    4,
		StudyTime:        90,
		CompletedLessons: []string{"what-is-hinduism", "scripture-overview"},
		QuizScores: map[string][]int{
			"general": {10, 20, 70},
			"expert":  {0},
		},
		CurrentRoadmap:  &roadmap,
		RoadmapProgress: map[string]int{"devotional": 65, "beginner": 100},
		LastStudyDate:   &date,
		Achievements:    []string{"first-quiz"},
		Bookmarks:       []string{"bhagavad-gita", "rigveda"},
		Notes:           map[string]string{"rigveda": "hymn 1.1 to Agni"},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for name, record := range map[string]models.ProgressRecord{
		"Default":   models.DefaultProgress(),
		"Populated": populatedRecord(),
	} {
		t.Run(name, func(t *testing.T) {
			raw, err := Encode(record)
			require.NoError(t, err)
			got, err := Decode(raw)
			require.NoError(t, err)
			if diff := cmp.Diff(record, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeUsesStoredFieldNames(t *testing.T) {
	raw, err := Encode(models.DefaultProgress())
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"totalScore": 0,
		"learningStreak": 0,
		"textsExplored": 0,
		"studyTime": 0,
		"completedLessons": [],
		"quizScores": {},
		"currentRoadmap": null,
		"roadmapProgress": {},
		"lastStudyDate": null,
		"achievements": [],
		"bookmarks": [],
		"notes": {}
	}`, raw)
}

func TestDecodeNormalizes(t *testing.T) {
	got, err := Decode(`{
		"totalScore": 15,
		"completedLessons": ["intro", "intro", "vedas"],
		"quizScores": {"general": null},
		"roadmapProgress": {"beginner": 140, "philosophy": -20},
		"achievements": null,
		"notes": null
	}`)
	require.NoError(t, err)

	want := models.DefaultProgress()
	want.TotalScore = 15
	want.CompletedLessons = []string{"intro", "vedas"}
	want.QuizScores = map[string][]int{"general": {}}
	want.RoadmapProgress = map[string]int{"beginner": 100, "philosophy": 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decoded record mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodePartialBlobFillsDefaults(t *testing.T) {
	got, err := Decode(`{"totalScore": 7}`)
	require.NoError(t, err)

	want := models.DefaultProgress()
	want.TotalScore = 7
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decoded record mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"", "{", `"text"`, `{"quizScores": {"general": [1, "two"]}}`} {
		_, err := Decode(raw)
		assert.Error(t, err, "raw %q", raw)
	}
}
