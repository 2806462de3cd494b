package models

import (
    "gorm.io/gorm"
)

type Meal struct {
    gorm.Model
    UserID   uint   `gorm:"index;not null"` // FK → users.id
    Name     string `gorm:"not null"`
    Calories int
}
