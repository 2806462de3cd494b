package repositories

import (
	"errors"

	"github.com/DivaythFyr2/fittrack/models"

	"gorm.io/gorm"
)

// MealRepository is the GORM-backed storage collaborator for meals.
type MealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) *MealRepository {
	return &MealRepository{db: db}
}

func (r *MealRepository) FindAll() ([]models.Meal, error) {
	var meals []models.Meal
	err := r.db.Find(&meals).Error
	return meals, err
}

// FindByID returns (nil, nil) when no meal exists with the given id.
func (r *MealRepository) FindByID(id uint) (*models.Meal, error) {
	var meal models.Meal
	err := r.db.First(&meal, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// FindByUserID returns the user's meals in storage order.
func (r *MealRepository) FindByUserID(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := r.db.Where("user_id = ?", userID).Find(&meals).Error
	return meals, err
}

func (r *MealRepository) Save(meal *models.Meal) error {
	return r.db.Save(meal).Error
}

func (r *MealRepository) Delete(meal *models.Meal) error {
	return r.db.Delete(meal).Error
}

// DeleteByUserID removes every meal owned by the user. Used by the
// application-level cascade when a user is deleted.
func (r *MealRepository) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Meal{}).Error
}
