package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/baabaablacksheep2102/Spring-boot-nm-fitness-tracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStats(t *testing.T) {
	env := newTestEnv(t)
	userID, _ := env.register(t, "stats@example.com")

	today := models.Today()
	yesterday := models.NewDate(time.Now().AddDate(0, 0, -1))
	require.NoError(t, env.db.Create(&models.Meal{UserID: userID, Date: today, Calories: 300}).Error)
	require.NoError(t, env.db.Create(&models.Meal{UserID: userID, Date: today, Calories: 200}).Error)
	require.NoError(t, env.db.Create(&models.Workout{UserID: userID, Date: today, Calories: 250, Distance: 1.0}).Error)
	// records outside today and records of other users stay invisible
	require.NoError(t, env.db.Create(&models.Meal{UserID: userID, Date: yesterday, Calories: 900}).Error)
	require.NoError(t, env.db.Create(&models.Meal{UserID: userID + 1, Date: today, Calories: 500}).Error)

	w := env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/dashboard/%d/stats", userID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, float64(200), resp["status"])
	data := resp["data"].(map[string]any)
	assert.Equal(t, today.String(), data["date"])
	assert.Equal(t, float64(500), data["caloriesIn"])
	assert.Equal(t, float64(250), data["caloriesOut"])
	assert.Equal(t, float64(250), data["netCalories"])
	assert.Equal(t, float64(1300), data["steps"])
	assert.Equal(t, float64(2), data["mealCount"])
	assert.Equal(t, float64(1), data["workoutCount"])
}

func TestGetStatsEmpty(t *testing.T) {
	env := newTestEnv(t)
	userID, _ := env.register(t, "stats-empty@example.com")

	w := env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/dashboard/%d/stats", userID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(0), data["caloriesIn"])
	assert.Equal(t, float64(0), data["caloriesOut"])
	assert.Equal(t, float64(0), data["netCalories"])
	assert.Equal(t, float64(0), data["steps"])
}

func TestGetWeekly(t *testing.T) {
	env := newTestEnv(t)
	userID, _ := env.register(t, "weekly@example.com")

	now := time.Now()
	oldest := models.NewDate(now.AddDate(0, 0, -6))
	today := models.Today()
	require.NoError(t, env.db.Create(&models.Meal{UserID: userID, Date: oldest, Calories: 400}).Error)
	require.NoError(t, env.db.Create(&models.Workout{UserID: userID, Date: today, Calories: 320, Distance: 2.5}).Error)
	// a record 7 days back falls off the window
	require.NoError(t, env.db.Create(&models.Meal{
		UserID: userID, Date: models.NewDate(now.AddDate(0, 0, -7)), Calories: 999,
	}).Error)

	w := env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/dashboard/%d/weekly", userID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	days := decode(t, w)["data"].([]any)
	require.Len(t, days, 7)

	// oldest first, today last, each day independently computed
	first := days[0].(map[string]any)
	assert.Equal(t, oldest.String(), first["date"])
	assert.Equal(t, float64(400), first["caloriesIn"])
	assert.Equal(t, float64(0), first["caloriesOut"])

	last := days[6].(map[string]any)
	assert.Equal(t, today.String(), last["date"])
	assert.Equal(t, float64(320), last["caloriesOut"])
	assert.Equal(t, float64(3250), last["steps"]) // floor(2.5 * 1300)

	for i := 1; i < 7; i++ {
		prev := days[i-1].(map[string]any)["date"].(string)
		cur := days[i].(map[string]any)["date"].(string)
		assert.Less(t, prev, cur)
	}

	middle := days[3].(map[string]any)
	assert.Equal(t, float64(0), middle["caloriesIn"])
}
