package services

import (
	"github.com/DivaythFyr2/fittrack/dto"
	"github.com/DivaythFyr2/fittrack/mappers"
)

// WorkoutService orchestrates workout CRUD. A workout always belongs to an
// existing user; calories burned are derived by the mapper on create and
// update, never accepted from the client.
type WorkoutService struct {
	workouts WorkoutStore
	users    UserStore
	mapper   mappers.WorkoutMapper
}

func NewWorkoutService(workouts WorkoutStore, users UserStore) *WorkoutService {
	return &WorkoutService{workouts: workouts, users: users}
}

func (s *WorkoutService) GetAllWorkouts() ([]dto.WorkoutDTO, error) {
	workouts, err := s.workouts.FindAll()
	if err != nil {
		return nil, err
	}
	result := make([]dto.WorkoutDTO, 0, len(workouts))
	for i := range workouts {
		result = append(result, *s.mapper.ToDTO(&workouts[i]))
	}
	return result, nil
}

func (s *WorkoutService) GetWorkoutByID(id uint) (*dto.WorkoutDTO, error) {
	workout, err := s.workouts.FindByID(id)
	if err != nil {
		return nil, err
	}
	if workout == nil {
		return nil, ErrWorkoutNotFound
	}
	return s.mapper.ToDTO(workout), nil
}

// GetWorkoutsByUserID lists the user's workouts in storage order. The owner
// is checked for existence first, without fetching the full record.
func (s *WorkoutService) GetWorkoutsByUserID(userID uint) ([]dto.WorkoutDTO, error) {
	exists, err := s.users.ExistsByID(userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}
	workouts, err := s.workouts.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.WorkoutDTO, 0, len(workouts))
	for i := range workouts {
		result = append(result, *s.mapper.ToDTO(&workouts[i]))
	}
	return result, nil
}

func (s *WorkoutService) CreateWorkout(userID uint, workoutDTO *dto.WorkoutDTO) error {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.workouts.Save(s.mapper.ToModel(workoutDTO, user))
}

func (s *WorkoutService) UpdateWorkout(id uint, workoutDTO *dto.WorkoutDTO) error {
	workout, err := s.workouts.FindByID(id)
	if err != nil {
		return err
	}
	if workout == nil {
		return ErrWorkoutNotFound
	}
	s.mapper.UpdateModel(workout, workoutDTO)
	return s.workouts.Save(workout)
}

func (s *WorkoutService) DeleteWorkout(id uint) error {
	workout, err := s.workouts.FindByID(id)
	if err != nil {
		return err
	}
	if workout == nil {
		return ErrWorkoutNotFound
	}
	return s.workouts.Delete(workout)
}
