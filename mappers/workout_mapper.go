package mappers

import (
	"github.com/DivaythFyr2/fittrack/dto"
	"github.com/DivaythFyr2/fittrack/models"
	"github.com/DivaythFyr2/fittrack/utils"
)

// WorkoutMapper converts between Workout records and their wire shape.
// CaloriesBurned is derived: it is recomputed from the submitted name and
// duration on every build and update, and never copied from a client.
type WorkoutMapper struct{}

// ToDTO echoes only name and duration; the owner link stays internal.
func (WorkoutMapper) ToDTO(workout *models.Workout) *dto.WorkoutDTO {
	if workout == nil {
		return nil
	}
	return &dto.WorkoutDTO{
		Name:     workout.Name,
		Duration: workout.Duration,
	}
}

// ToModel builds a new Workout for the given owner with no identity key.
func (WorkoutMapper) ToModel(workoutDTO *dto.WorkoutDTO, user *models.User) *models.Workout {
	if workoutDTO == nil {
		return nil
	}
	return &models.Workout{
		UserID:         user.ID,
		Name:           workoutDTO.Name,
		Duration:       workoutDTO.Duration,
		CaloriesBurned: utils.CalculateCaloriesBurned(workoutDTO.Name, workoutDTO.Duration),
	}
}

// UpdateModel overwrites name and duration in place and recomputes
// CaloriesBurned from the new values. Identity and owner are never touched.
func (WorkoutMapper) UpdateModel(workout *models.Workout, workoutDTO *dto.WorkoutDTO) {
	if workoutDTO == nil {
		return
	}
	workout.Name = workoutDTO.Name
	workout.Duration = workoutDTO.Duration
	workout.CaloriesBurned = utils.CalculateCaloriesBurned(workoutDTO.Name, workoutDTO.Duration)
}
