package services

import (
	"github.com/DivaythFyr2/fittrack/constants"
)

// NotFoundError marks a lookup that failed because the entity does not exist.
// Controllers map it to a 404 with the message as the response body.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

var (
	ErrUserNotFound    = &NotFoundError{Message: constants.UserNotFound}
	ErrWorkoutNotFound = &NotFoundError{Message: constants.WorkoutNotFound}
	ErrMealNotFound    = &NotFoundError{Message: constants.MealNotFound}
)
