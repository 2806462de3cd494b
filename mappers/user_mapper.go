package mappers

import (
	"github.com/DivaythFyr2/fittrack/dto"
	"github.com/DivaythFyr2/fittrack/models"
)

// UserMapper converts between User records and their wire shape. It does no
// I/O and no existence checks; inputs are already validated.
type UserMapper struct{}

func (UserMapper) ToDTO(user *models.User) *dto.UserDTO {
	if user == nil {
		return nil
	}
	return &dto.UserDTO{
		Name:   user.Name,
		Age:    user.Age,
		Weight: user.Weight,
		Height: user.Height,
	}
}

// ToModel builds a new User with no identity key; the store assigns one on save.
func (UserMapper) ToModel(userDTO *dto.UserDTO) *models.User {
	if userDTO == nil {
		return nil
	}
	return &models.User{
		Name:   userDTO.Name,
		Age:    userDTO.Age,
		Weight: userDTO.Weight,
		Height: userDTO.Height,
	}
}

// UpdateModel overwrites the mutable fields in place. The identity key is
// never touched. A nil DTO is a no-op.
func (UserMapper) UpdateModel(user *models.User, userDTO *dto.UserDTO) {
	if userDTO == nil {
		return
	}
	user.Name = userDTO.Name
	user.Age = userDTO.Age
	user.Weight = userDTO.Weight
	user.Height = userDTO.Height
}
