package services_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/DivaythFyr2/fittrack/models"
	"github.com/DivaythFyr2/fittrack/repositories"
	"github.com/DivaythFyr2/fittrack/services"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq int64

// newTestDB opens a uniquely named in-memory sqlite database so tests never
// share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:services_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Workout{}, &models.Meal{}))
	return db
}

type testEnv struct {
	db       *gorm.DB
	users    *services.UserService
	workouts *services.WorkoutService
	meals    *services.MealService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	workoutRepo := repositories.NewWorkoutRepository(db)
	mealRepo := repositories.NewMealRepository(db)
	return &testEnv{
		db:       db,
		users:    services.NewUserService(userRepo, workoutRepo, mealRepo),
		workouts: services.NewWorkoutService(workoutRepo, userRepo),
		meals:    services.NewMealService(mealRepo, userRepo),
	}
}

func (e *testEnv) seedUser(t *testing.T, name string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Age: 28, Weight: 79, Height: 185}
	require.NoError(t, e.db.Create(user).Error)
	return user
}
