package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vedaverse/backend/storage"
)

func TestReadText(t *testing.T) {
	app, store := setupApp(t, nil)

	resp, result := doRequest(t, app, "POST", "/api/texts/isha-upanishad/read", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	d := data(t, result)
	assert.EqualValues(t, 1, d["texts_explored"])
	assert.EqualValues(t, 1, d["learning_streak"])
	assert.Equal(t, "isha-upanishad", d["text"].(map[string]interface{})["id"])

	doRequest(t, app, "POST", "/api/texts/rigveda/read", nil)
	p := store.Progress()
	assert.Equal(t, 2, p.TextsExplored)
	assert.Equal(t, 1, p.LearningStreak)

	resp, result = doRequest(t, app, "POST", "/api/texts/mahabharata/read", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Text not found", result["message"])
}

func TestBookmarks(t *testing.T) {
	app, store := setupApp(t, nil)

	doRequest(t, app, "PUT", "/api/texts/ramayana/bookmark", nil)
	doRequest(t, app, "PUT", "/api/texts/rigveda/bookmark", nil)
	resp, result := doRequest(t, app, "PUT", "/api/texts/ramayana/bookmark", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []interface{}{"ramayana", "rigveda"}, data(t, result)["bookmarks"])

	resp, result = doRequest(t, app, "DELETE", "/api/texts/ramayana/bookmark", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []interface{}{"rigveda"}, data(t, result)["bookmarks"])

	resp, result = doRequest(t, app, "GET", "/api/texts", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	for _, item := range dataList(t, result) {
		text := item.(map[string]interface{})
		assert.Equal(t, text["id"] == "rigveda", text["bookmarked"], text["id"])
	}

	assert.Equal(t, []string{"rigveda"}, store.Progress().Bookmarks)
}

func TestNotes(t *testing.T) {
	app, store := setupApp(t, nil)

	resp, _ := doRequest(t, app, "GET", "/api/texts/katha-upanishad/note", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, result := doRequest(t, app, "PUT", "/api/texts/katha-upanishad/note", map[string]string{"note": "Nachiketa's third boon"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Nachiketa's third boon", data(t, result)["note"])

	resp, result = doRequest(t, app, "GET", "/api/texts/katha-upanishad/note", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Nachiketa's third boon", data(t, result)["note"])

	resp, _ = doRequest(t, app, "PUT", "/api/texts/katha-upanishad/note", map[string]string{"note": ""})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, store.Progress().Notes)

	resp, _ = doRequest(t, app, "PUT", "/api/texts/unknown/note", map[string]string{"note": "x"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestReadTextPersistFailureCommitsNothing(t *testing.T) {
	st := &brokenStorage{MemoryStorage: storage.NewMemoryStorage()}
	app, store := setupApp(t, st)
	st.broken = true

	resp, _ := doRequest(t, app, "POST", "/api/texts/rigveda/read", nil)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	p := store.Progress()
	assert.Zero(t, p.TextsExplored)
	assert.Zero(t, p.LearningStreak)
}
