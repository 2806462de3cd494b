package dto

// Wire shapes for the REST API. Binding tags carry the field constraints;
// controllers translate validator errors into per-field messages.

type UserDTO struct {
	Name   string  `json:"name" binding:"required,min=2,max=50"`
	Age    int     `json:"age" binding:"min=14"`
	Weight float64 `json:"weight" binding:"min=40"`
	Height float64 `json:"height" binding:"min=80"`
}

type WorkoutDTO struct {
	Name     string `json:"name" binding:"required"`
	Duration int    `json:"duration" binding:"min=1"` // minutes
}

// MealDTO carries the owner's id in responses only; on create the owner
// comes from the route.
type MealDTO struct {
	Name     string `json:"name" binding:"required"`
	Calories int    `json:"calories" binding:"gt=10"`
	UserID   uint   `json:"userId,omitempty"`
}
