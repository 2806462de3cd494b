package services

import (
	"github.com/DivaythFyr2/fittrack/dto"
	"github.com/DivaythFyr2/fittrack/mappers"
)

// UserService orchestrates user CRUD. Deleting a user also removes every
// workout and meal the user owns: the relational cascade is an application
// rule here, not a storage feature.
type UserService struct {
	users    UserStore
	workouts WorkoutStore
	meals    MealStore
	mapper   mappers.UserMapper
}

func NewUserService(users UserStore, workouts WorkoutStore, meals MealStore) *UserService {
	return &UserService{users: users, workouts: workouts, meals: meals}
}

func (s *UserService) GetAllUsers() ([]dto.UserDTO, error) {
	users, err := s.users.FindAll()
	if err != nil {
		return nil, err
	}
	result := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		result = append(result, *s.mapper.ToDTO(&users[i]))
	}
	return result, nil
}

func (s *UserService) GetUserByID(id uint) (*dto.UserDTO, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.mapper.ToDTO(user), nil
}

func (s *UserService) CreateUser(userDTO *dto.UserDTO) error {
	return s.users.Save(s.mapper.ToModel(userDTO))
}

func (s *UserService) UpdateUser(id uint, userDTO *dto.UserDTO) error {
	user, err := s.users.FindByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	s.mapper.UpdateModel(user, userDTO)
	return s.users.Save(user)
}

// DeleteUser removes the user's workouts and meals before the user itself,
// so no dangling references survive.
func (s *UserService) DeleteUser(id uint) error {
	user, err := s.users.FindByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err := s.workouts.DeleteByUserID(user.ID); err != nil {
		return err
	}
	if err := s.meals.DeleteByUserID(user.ID); err != nil {
		return err
	}
	return s.users.Delete(user)
}
