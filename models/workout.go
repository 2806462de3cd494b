package models

import (
    "gorm.io/gorm"
)

type Workout struct {
    gorm.Model
    UserID         uint   `gorm:"index;not null"` // FK → users.id
    Name           string `gorm:"not null"`
    Duration       int    // minutes
    CaloriesBurned int    // derived, never taken from the client
}
