package models

import (
	"time"
)

const RoleCouple = "couple"

type User struct {
	ID        string    `bson:"id" json:"id"`
	Email     string    `bson:"email" json:"email" validate:"required,email"`
	Password  string    `bson:"password" json:"-"`
	Name      string    `bson:"name" json:"name" validate:"required"`
	Role      string    `bson:"role" json:"role"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
