package controllers

import (
	"net/http"

	"github.com/DivaythFyr2/fittrack/constants"
	"github.com/DivaythFyr2/fittrack/dto"
	"github.com/DivaythFyr2/fittrack/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	svc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{svc: svc}
}

func (ctl *UserController) GetAllUsers(c *gin.Context) {
	users, err := ctl.svc.GetAllUsers()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (ctl *UserController) GetUserByID(c *gin.Context) {
	id, ok := parseID(c, "id", constants.InvalidUserID)
	if !ok {
		return
	}
	user, err := ctl.svc.GetUserByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctl *UserController) CreateUser(c *gin.Context) {
	var userDTO dto.UserDTO
	if !bindJSON(c, &userDTO, userFieldMessages) {
		return
	}
	if err := ctl.svc.CreateUser(&userDTO); err != nil {
		respondServiceError(c, err)
		return
	}
	c.String(http.StatusCreated, constants.UserCreated)
}

func (ctl *UserController) UpdateUser(c *gin.Context) {
	id, ok := parseID(c, "id", constants.InvalidUserID)
	if !ok {
		return
	}
	var userDTO dto.UserDTO
	if !bindJSON(c, &userDTO, userFieldMessages) {
		return
	}
	if err := ctl.svc.UpdateUser(id, &userDTO); err != nil {
		respondServiceError(c, err)
		return
	}
	c.String(http.StatusOK, constants.UserUpdated)
}

func (ctl *UserController) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id", constants.InvalidUserID)
	if !ok {
		return
	}
	if err := ctl.svc.DeleteUser(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.String(http.StatusOK, constants.UserDeleted)
}
