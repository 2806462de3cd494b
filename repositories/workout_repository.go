package repositories

import (
	"errors"

	"github.com/DivaythFyr2/fittrack/models"

	"gorm.io/gorm"
)

// WorkoutRepository is the GORM-backed storage collaborator for workouts.
type WorkoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

func (r *WorkoutRepository) FindAll() ([]models.Workout, error) {
	var workouts []models.Workout
	err := r.db.Find(&workouts).Error
	return workouts, err
}

// FindByID returns (nil, nil) when no workout exists with the given id.
func (r *WorkoutRepository) FindByID(id uint) (*models.Workout, error) {
	var workout models.Workout
	err := r.db.First(&workout, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

// FindByUserID returns the user's workouts in storage order.
func (r *WorkoutRepository) FindByUserID(userID uint) ([]models.Workout, error) {
	var workouts []models.Workout
	err := r.db.Where("user_id = ?", userID).Find(&workouts).Error
	return workouts, err
}

func (r *WorkoutRepository) Save(workout *models.Workout) error {
	return r.db.Save(workout).Error
}

func (r *WorkoutRepository) Delete(workout *models.Workout) error {
	return r.db.Delete(workout).Error
}

// DeleteByUserID removes every workout owned by the user. Used by the
// application-level cascade when a user is deleted.
func (r *WorkoutRepository) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Workout{}).Error
}
