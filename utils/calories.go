package utils

// Per-minute burn rates for known activities. Lookup is case-sensitive;
// anything else falls back to defaultCaloriesPerMinute.
var workoutCalories = map[string]int{
	"Running":   10,
	"Swimming":  8,
	"Cycling":   7,
	"Yoga":      4,
	"Jump Rope": 12,
}

const defaultCaloriesPerMinute = 5

// CalculateCaloriesBurned returns the calories burned for a workout of the
// given name and duration in minutes.
func CalculateCaloriesBurned(workoutName string, duration int) int {
	caloriesPerMinute, ok := workoutCalories[workoutName]
	if !ok {
		caloriesPerMinute = defaultCaloriesPerMinute
	}
	return caloriesPerMinute * duration
}
