package constants

// Fixed message bodies shared by services, controllers and tests.
const (
	UserCreated = "User created successfully"
	UserUpdated = "User updated successfully"
	UserDeleted = "User deleted successfully"

	WorkoutCreated = "Workout created successfully"
	WorkoutUpdated = "Workout updated successfully"
	WorkoutDeleted = "Workout deleted successfully"

	MealCreated = "Meal created successfully"
	MealUpdated = "Meal updated successfully"
	MealDeleted = "Meal deleted successfully"

	UserNotFound    = "User not found"
	WorkoutNotFound = "Workout not found"
	MealNotFound    = "Meal not found"

	InvalidUserID    = "Invalid user ID format"
	InvalidWorkoutID = "Invalid workout ID format"
	InvalidMealID    = "Invalid meal ID format"

	InternalServerError = "Internal server error"
	InvalidJSON         = "Invalid JSON format in request"
)
