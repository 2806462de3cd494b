package services

import (
	"github.com/DivaythFyr2/fittrack/dto"
	"github.com/DivaythFyr2/fittrack/mappers"
)

// MealService orchestrates meal CRUD. A meal always belongs to an existing
// user.
type MealService struct {
	meals  MealStore
	users  UserStore
	mapper mappers.MealMapper
}

func NewMealService(meals MealStore, users UserStore) *MealService {
	return &MealService{meals: meals, users: users}
}

func (s *MealService) GetAllMeals() ([]dto.MealDTO, error) {
	meals, err := s.meals.FindAll()
	if err != nil {
		return nil, err
	}
	result := make([]dto.MealDTO, 0, len(meals))
	for i := range meals {
		result = append(result, *s.mapper.ToDTO(&meals[i]))
	}
	return result, nil
}

func (s *MealService) GetMealByID(id uint) (*dto.MealDTO, error) {
	meal, err := s.meals.FindByID(id)
	if err != nil {
		return nil, err
	}
	if meal == nil {
		return nil, ErrMealNotFound
	}
	return s.mapper.ToDTO(meal), nil
}

// GetMealsByUserID lists the user's meals in storage order. The owner is
// checked for existence first, without fetching the full record.
func (s *MealService) GetMealsByUserID(userID uint) ([]dto.MealDTO, error) {
	exists, err := s.users.ExistsByID(userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}
	meals, err := s.meals.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.MealDTO, 0, len(meals))
	for i := range meals {
		result = append(result, *s.mapper.ToDTO(&meals[i]))
	}
	return result, nil
}

func (s *MealService) CreateMeal(userID uint, mealDTO *dto.MealDTO) error {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.meals.Save(s.mapper.ToModel(mealDTO, user))
}

func (s *MealService) UpdateMeal(id uint, mealDTO *dto.MealDTO) error {
	meal, err := s.meals.FindByID(id)
	if err != nil {
		return err
	}
	if meal == nil {
		return ErrMealNotFound
	}
	s.mapper.UpdateModel(meal, mealDTO)
	return s.meals.Save(meal)
}

func (s *MealService) DeleteMeal(id uint) error {
	meal, err := s.meals.FindByID(id)
	if err != nil {
		return err
	}
	if meal == nil {
		return ErrMealNotFound
	}
	return s.meals.Delete(meal)
}
