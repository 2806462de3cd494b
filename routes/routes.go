package routes

import (
    "github.com/DivaythFyr2/fittrack/controllers"
    "github.com/DivaythFyr2/fittrack/middlewares"
    "github.com/DivaythFyr2/fittrack/repositories"
    "github.com/DivaythFyr2/fittrack/services"

    "github.com/gin-gonic/gin"
    "gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
    r := gin.New()
    r.Use(gin.Logger(), middlewares.Recovery())

    userRepo := repositories.NewUserRepository(db)
    workoutRepo := repositories.NewWorkoutRepository(db)
    mealRepo := repositories.NewMealRepository(db)

    userCtl := controllers.NewUserController(services.NewUserService(userRepo, workoutRepo, mealRepo))
    workoutCtl := controllers.NewWorkoutController(services.NewWorkoutService(workoutRepo, userRepo))
    mealCtl := controllers.NewMealController(services.NewMealService(mealRepo, userRepo))

    users := r.Group("/users")
    {
        users.GET("", userCtl.GetAllUsers)
        users.POST("", userCtl.CreateUser)
        users.GET("/:id", userCtl.GetUserByID)
        users.PUT("/:id", userCtl.UpdateUser)
        users.DELETE("/:id", userCtl.DeleteUser)
    }

    workouts := r.Group("/workouts")
    {
        workouts.GET("", workoutCtl.GetAllWorkouts)
        workouts.GET("/:id", workoutCtl.GetWorkoutByID)
        workouts.PUT("/:id", workoutCtl.UpdateWorkout)
        workouts.DELETE("/:id", workoutCtl.DeleteWorkout)
        workouts.GET("/user/:userId", workoutCtl.GetWorkoutsByUserID)
        workouts.POST("/user/:userId", workoutCtl.CreateWorkout)
    }

    meals := r.Group("/meals")
    {
        meals.GET("", mealCtl.GetAllMeals)
        meals.GET("/:id", mealCtl.GetMealByID)
        meals.PUT("/:id", mealCtl.UpdateMeal)
        meals.DELETE("/:id", mealCtl.DeleteMeal)
        meals.GET("/user/:userId", mealCtl.GetMealsByUserID)
        meals.POST("/user/:userId", mealCtl.CreateMeal)
    }

    return r
}
