package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/DivaythFyr2/fittrack/constants"
	"github.com/DivaythFyr2/fittrack/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Per-field validation messages keyed "field.tag". Binding tags on the DTOs
// decide what fails; these tables decide what the client reads.
var (
	userFieldMessages = map[string]string{
		"name.required": "Name cannot be blank",
		"name.min":      "Name must be between 2 and 50 characters",
		"name.max":      "Name must be between 2 and 50 characters",
		"age.min":       "Age must be greater than or equal to 14",
		"weight.min":    "Weight must be greater than or equal to 40",
		"height.min":    "Height must be greater than or equal to 80",
	}

	workoutFieldMessages = map[string]string{
		"name.required": "Workout name cannot be empty",
		"duration.min":  "Duration must be at least 1 minutes",
	}

	mealFieldMessages = map[string]string{
		"name.required": "Meal cannot be empty",
		"calories.gt":   "Calories must be greater than 10",
	}
)

// bindJSON deserializes and validates the request body. On a field-level
// violation it answers 400 with a field→message object; on a payload that
// cannot be parsed at all it answers 400 with a fixed message. Returns false
// when a response has already been written.
func bindJSON(c *gin.Context, obj interface{}, messages map[string]string) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		body := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			field := strings.ToLower(fe.Field())
			if msg, ok := messages[field+"."+fe.Tag()]; ok {
				body[field] = msg
			} else {
				body[field] = fe.Error()
			}
		}
		c.JSON(http.StatusBadRequest, body)
		return false
	}

	c.String(http.StatusBadRequest, constants.InvalidJSON)
	return false
}

// parseID reads a numeric path parameter, answering 400 with the
// entity-specific message when it is not a valid id.
func parseID(c *gin.Context, param, invalidMessage string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, invalidMessage)
		return 0, false
	}
	return uint(id), true
}

// respondServiceError maps service errors to wire responses: NotFound → 404
// with the error's message, anything else → 500 with a generic body.
func respondServiceError(c *gin.Context, err error) {
	var notFound *services.NotFoundError
	if errors.As(err, &notFound) {
		c.String(http.StatusNotFound, notFound.Message)
		return
	}
	c.String(http.StatusInternalServerError, constants.InternalServerError)
}
