package controllers

import (
	"net/http"

	"github.com/DivaythFyr2/fittrack/constants"
	"github.com/DivaythFyr2/fittrack/dto"
	"github.com/DivaythFyr2/fittrack/services"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	svc *services.WorkoutService
}

func NewWorkoutController(svc *services.WorkoutService) *WorkoutController {
	return &WorkoutController{svc: svc}
}

func (ctl *WorkoutController) GetAllWorkouts(c *gin.Context) {
	workouts, err := ctl.svc.GetAllWorkouts()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

func (ctl *WorkoutController) GetWorkoutByID(c *gin.Context) {
	id, ok := parseID(c, "id", constants.InvalidWorkoutID)
	if !ok {
		return
	}
	workout, err := ctl.svc.GetWorkoutByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

func (ctl *WorkoutController) GetWorkoutsByUserID(c *gin.Context) {
	userID, ok := parseID(c, "userId", constants.InvalidUserID)
	if !ok {
		return
	}
	workouts, err := ctl.svc.GetWorkoutsByUserID(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

func (ctl *WorkoutController) CreateWorkout(c *gin.Context) {
	userID, ok := parseID(c, "userId", constants.InvalidUserID)
	if !ok {
		return
	}
	var workoutDTO dto.WorkoutDTO
	if !bindJSON(c, &workoutDTO, workoutFieldMessages) {
		return
	}
	if err := ctl.svc.CreateWorkout(userID, &workoutDTO); err != nil {
		respondServiceError(c, err)
		return
	}
	c.String(http.StatusOK, constants.WorkoutCreated)
}

func (ctl *WorkoutController) UpdateWorkout(c *gin.Context) {
	id, ok := parseID(c, "id", constants.InvalidWorkoutID)
	if !ok {
		return
	}
	var workoutDTO dto.WorkoutDTO
	if !bindJSON(c, &workoutDTO, workoutFieldMessages) {
		return
	}
	if err := ctl.svc.UpdateWorkout(id, &workoutDTO); err != nil {
		respondServiceError(c, err)
		return
	}
	c.String(http.StatusOK, constants.WorkoutUpdated)
}

func (ctl *WorkoutController) DeleteWorkout(c *gin.Context) {
	id, ok := parseID(c, "id", constants.InvalidWorkoutID)
	if !ok {
		return
	}
	if err := ctl.svc.DeleteWorkout(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.String(http.StatusOK, constants.WorkoutDeleted)
}
