package services

import (
	"github.com/DivaythFyr2/fittrack/models"
)

// Storage collaborators the services depend on. The repositories package
// provides the GORM-backed implementations.

type UserStore interface {
	FindAll() ([]models.User, error)
	FindByID(id uint) (*models.User, error)
	ExistsByID(id uint) (bool, error)
	Save(user *models.User) error
	Delete(user *models.User) error
}

type WorkoutStore interface {
	FindAll() ([]models.Workout, error)
	FindByID(id uint) (*models.Workout, error)
	FindByUserID(userID uint) ([]models.Workout, error)
	Save(workout *models.Workout) error
	Delete(workout *models.Workout) error
	DeleteByUserID(userID uint) error
}

type MealStore interface {
	FindAll() ([]models.Meal, error)
	FindByID(id uint) (*models.Meal, error)
	FindByUserID(userID uint) ([]models.Meal, error)
	Save(meal *models.Meal) error
	Delete(meal *models.Meal) error
	DeleteByUserID(userID uint) error
}
