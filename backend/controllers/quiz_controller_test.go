package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vedaverse/backend/storage"
)

func TestGetQuizzes(t *testing.T) {
	app, _ := setupApp(t, nil)
	doRequest(t, app, "POST", "/api/quizzes/advanced/complete", map[string]int{"score": 60})
	doRequest(t, app, "POST", "/api/quizzes/advanced/complete", map[string]int{"score": 20})

	resp, result := doRequest(t, app, "GET", "/api/quizzes", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	quizzes := dataList(t, result)
	require.Len(t, quizzes, 5)

	advanced := quizzes[1].(map[string]interface{})
	assert.Equal(t, "advanced", advanced["id"])
	assert.EqualValues(t, 2, advanced["attempts"])
	assert.EqualValues(t, 60, advanced["best_score"])
	assert.EqualValues(t, 20, advanced["last_score"])
}

func TestSubmitAnswer(t *testing.T) {
	app, store := setupApp(t, nil)

	tests := []struct {
		name      string
		body      map[string]interface{}
		wantPts   float64
		wantTotal float64
	}{
		{"correct with time left", map[string]interface{}{"correct": true, "time_left": 12}, 34, 34},
		{"wrong answer scores nothing", map[string]interface{}{"correct": false, "time_left": 30}, 0, 34},
		{"time left is capped at the limit", map[string]interface{}{"correct": true, "time_left": 99}, 70, 104},
		{"timed out", map[string]interface{}{"correct": true, "time_left": -4}, 10, 114},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, result := doRequest(t, app, "POST", "/api/quizzes/general/answers", tt.body)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)

			d := data(t, result)
			assert.Equal(t, tt.wantPts, d["points"])
			assert.Equal(t, tt.wantTotal, d["total_score"])
		})
	}

	assert.Equal(t, 114, store.Progress().TotalScore)
	assert.Empty(t, store.Progress().QuizScores)
}

func TestSubmitAnswerUnknownCategory(t *testing.T) {
	app, _ := setupApp(t, nil)

	resp, result := doRequest(t, app, "POST", "/api/quizzes/astrology/answers",
		map[string]interface{}{"correct": true, "time_left": 5})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Quiz category not found", result["message"])
}

func TestCompleteQuiz(t *testing.T) {
	app, store := setupApp(t, nil)

	doRequest(t, app, "POST", "/api/quizzes/general/complete", map[string]int{"score": 10})
	resp, result := doRequest(t, app, "POST", "/api/quizzes/general/complete", map[string]int{"score": 20})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	d := data(t, result)
	assert.Equal(t, "Quiz completed", d["message"])
	assert.Equal(t, []interface{}{10.0, 20.0}, d["scores"])

	p := store.Progress()
	assert.Equal(t, 30, p.TotalScore)
	assert.Equal(t, 1, p.LearningStreak)
	require.NotNil(t, p.LastStudyDate)
	assert.Equal(t, "2026-03-10", *p.LastStudyDate)
}

func TestCompleteQuizValidation(t *testing.T) {
	app, store := setupApp(t, nil)

	resp, _ := doRequest(t, app, "POST", "/api/quizzes/general/complete", map[string]int{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, result := doRequest(t, app, "POST", "/api/quizzes/general/complete", map[string]int{"score": -10})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, result["message"], "quiz score must not be negative")

	resp, _ = doRequest(t, app, "POST", "/api/quizzes/unknown/complete", map[string]int{"score": 10})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	assert.Empty(t, store.Progress().QuizScores)
	assert.Equal(t, 0, store.Progress().LearningStreak)
}

func TestCompleteQuizPersistFailureCommitsNothing(t *testing.T) {
	st := &brokenStorage{MemoryStorage: storage.NewMemoryStorage()}
	app, store := setupApp(t, st)
	st.broken = true

	resp, _ := doRequest(t, app, "POST", "/api/quizzes/general/complete", map[string]int{"score": 30})
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	p := store.Progress()
	assert.Empty(t, p.QuizScores)
	assert.Zero(t, p.TotalScore)
	assert.Zero(t, p.LearningStreak)
	assert.Nil(t, p.LastStudyDate)
}
