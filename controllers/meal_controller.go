package controllers

import (
	"net/http"

	"github.com/DivaythFyr2/fittrack/constants"
	"github.com/DivaythFyr2/fittrack/dto"
	"github.com/DivaythFyr2/fittrack/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	svc *services.MealService
}

func NewMealController(svc *services.MealService) *MealController {
	return &MealController{svc: svc}
}

func (ctl *MealController) GetAllMeals(c *gin.Context) {
	meals, err := ctl.svc.GetAllMeals()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (ctl *MealController) GetMealByID(c *gin.Context) {
	id, ok := parseID(c, "id", constants.InvalidMealID)
	if !ok {
		return
	}
	meal, err := ctl.svc.GetMealByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (ctl *MealController) GetMealsByUserID(c *gin.Context) {
	userID, ok := parseID(c, "userId", constants.InvalidUserID)
	if !ok {
		return
	}
	meals, err := ctl.svc.GetMealsByUserID(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (ctl *MealController) CreateMeal(c *gin.Context) {
	userID, ok := parseID(c, "userId", constants.InvalidUserID)
	if !ok {
		return
	}
	var mealDTO dto.MealDTO
	if !bindJSON(c, &mealDTO, mealFieldMessages) {
		return
	}
	if err := ctl.svc.CreateMeal(userID, &mealDTO); err != nil {
		respondServiceError(c, err)
		return
	}
	c.String(http.StatusCreated, constants.MealCreated)
}

func (ctl *MealController) UpdateMeal(c *gin.Context) {
	id, ok := parseID(c, "id", constants.InvalidMealID)
	if !ok {
		return
	}
	var mealDTO dto.MealDTO
	if !bindJSON(c, &mealDTO, mealFieldMessages) {
		return
	}
	if err := ctl.svc.UpdateMeal(id, &mealDTO); err != nil {
		respondServiceError(c, err)
		return
	}
	c.String(http.StatusOK, constants.MealUpdated)
}

func (ctl *MealController) DeleteMeal(c *gin.Context) {
	id, ok := parseID(c, "id", constants.InvalidMealID)
	if !ok {
		return
	}
	if err := ctl.svc.DeleteMeal(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.String(http.StatusOK, constants.MealDeleted)
}
