package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/DivaythFyr2/fittrack/constants"
	"github.com/DivaythFyr2/fittrack/dto"
	"github.com/DivaythFyr2/fittrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWorkoutPersistsDerivedCalories(t *testing.T) {
	r, db := setupRouter(t)
	user := seedUser(t, db, "Nikolai")

	w := perform(r, http.MethodPost, fmt.Sprintf("/workouts/user/%d", user.ID), `{"name":"Running","duration":45}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, constants.WorkoutCreated, w.Body.String())

	var stored models.Workout
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, 450, stored.CaloriesBurned)
}

func TestCreateWorkoutUserNotFound(t *testing.T) {
	r, db := setupRouter(t)

	w := perform(r, http.MethodPost, "/workouts/user/999", `{"name":"Running","duration":45}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, constants.UserNotFound, w.Body.String())

	var count int64
	require.NoError(t, db.Model(&models.Workout{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetWorkoutByID(t *testing.T) {
	r, db := setupRouter(t)
	user := seedUser(t, db, "Nikolai")
	workout := &models.Workout{UserID: user.ID, Name: "Running", Duration: 45, CaloriesBurned: 450}
	require.NoError(t, db.Create(workout).Error)

	w := perform(r, http.MethodGet, fmt.Sprintf("/workouts/%d", workout.ID), "")

	assert.Equal(t, http.StatusOK, w.Code)
	var got dto.WorkoutDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, dto.WorkoutDTO{Name: "Running", Duration: 45}, got)
}

func TestGetWorkoutByIDNotFound(t *testing.T) {
	r, _ := setupRouter(t)

	w := perform(r, http.MethodGet, "/workouts/999", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, constants.WorkoutNotFound, w.Body.String())
}

func TestGetWorkoutByIDInvalidFormat(t *testing.T) {
	r, _ := setupRouter(t)

	w := perform(r, http.MethodGet, "/workouts/abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, constants.InvalidWorkoutID, w.Body.String())
}

func TestGetWorkoutsByUserID(t *testing.T) {
	r, db := setupRouter(t)
	user := seedUser(t, db, "Nikolai")
	require.NoError(t, db.Create(&models.Workout{UserID: user.ID, Name: "Running", Duration: 45, CaloriesBurned: 450}).Error)
	require.NoError(t, db.Create(&models.Workout{UserID: user.ID, Name: "Yoga", Duration: 30, CaloriesBurned: 120}).Error)

	w := perform(r, http.MethodGet, fmt.Sprintf("/workouts/user/%d", user.ID), "")

	assert.Equal(t, http.StatusOK, w.Code)
	var got []dto.WorkoutDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.ElementsMatch(t, []dto.WorkoutDTO{
		{Name: "Running", Duration: 45},
		{Name: "Yoga", Duration: 30},
	}, got)
}

func TestGetWorkoutsByUserIDUserNotFound(t *testing.T) {
	r, _ := setupRouter(t)

	w := perform(r, http.MethodGet, "/workouts/user/999", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, constants.UserNotFound, w.Body.String())
}

func TestCreateWorkoutValidationMessages(t *testing.T) {
	r, db := setupRouter(t)
	user := seedUser(t, db, "Nikolai")

	w := perform(r, http.MethodPost, fmt.Sprintf("/workouts/user/%d", user.ID), `{"name":"","duration":0}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{
		"name":     "Workout name cannot be empty",
		"duration": "Duration must be at least 1 minutes",
	}, body)
}

func TestUpdateWorkoutRecomputesCaloriesOverHTTP(t *testing.T) {
	r, db := setupRouter(t)
	user := seedUser(t, db, "Nikolai")
	workout := &models.Workout{UserID: user.ID, Name: "Running", Duration: 45, CaloriesBurned: 450}
	require.NoError(t, db.Create(workout).Error)

	w := perform(r, http.MethodPut, fmt.Sprintf("/workouts/%d", workout.ID), `{"name":"Yoga","duration":30}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, constants.WorkoutUpdated, w.Body.String())

	var updated models.Workout
	require.NoError(t, db.First(&updated, workout.ID).Error)
	assert.Equal(t, 120, updated.CaloriesBurned)
}

func TestUpdateWorkoutNotFound(t *testing.T) {
	r, _ := setupRouter(t)

	w := perform(r, http.MethodPut, "/workouts/999", `{"name":"Yoga","duration":30}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, constants.WorkoutNotFound, w.Body.String())
}

func TestDeleteWorkout(t *testing.T) {
	r, db := setupRouter(t)
	user := seedUser(t, db, "Nikolai")
	workout := &models.Workout{UserID: user.ID, Name: "Running", Duration: 45, CaloriesBurned: 450}
	require.NoError(t, db.Create(workout).Error)

	w := perform(r, http.MethodDelete, fmt.Sprintf("/workouts/%d", workout.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, constants.WorkoutDeleted, w.Body.String())

	w = perform(r, http.MethodGet, fmt.Sprintf("/workouts/%d", workout.ID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
