package models

import (
    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    Name   string `gorm:"not null"`
    Age    int
    Weight float64
    Height float64
}
