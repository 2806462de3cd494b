package mappers

import (
	"github.com/DivaythFyr2/fittrack/dto"
	"github.com/DivaythFyr2/fittrack/models"
)

// MealMapper converts between Meal records and their wire shape.
type MealMapper struct{}

// ToDTO substitutes the owner link with the owner's identity key.
func (MealMapper) ToDTO(meal *models.Meal) *dto.MealDTO {
	if meal == nil {
		return nil
	}
	return &dto.MealDTO{
		Name:     meal.Name,
		Calories: meal.Calories,
		UserID:   meal.UserID,
	}
}

// ToModel builds a new Meal for the given owner with no identity key. The
// DTO's UserID is ignored; the resolved owner wins.
func (MealMapper) ToModel(mealDTO *dto.MealDTO, user *models.User) *models.Meal {
	if mealDTO == nil {
		return nil
	}
	return &models.Meal{
		UserID:   user.ID,
		Name:     mealDTO.Name,
		Calories: mealDTO.Calories,
	}
}

// UpdateModel overwrites name and calories in place. Identity and owner are
// never touched. A nil DTO is a no-op.
func (MealMapper) UpdateModel(meal *models.Meal, mealDTO *dto.MealDTO) {
	if mealDTO == nil {
		return
	}
	meal.Name = mealDTO.Name
	meal.Calories = mealDTO.Calories
}
