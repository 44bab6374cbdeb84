package models

import (
	"time"
)

type Review struct {
	ID         string     `bson:"id" json:"id"`
	UserID     string     `bson:"userId" json:"userId"`
	TargetID   string     `bson:"targetId" json:"targetId" validate:"required"`
	TargetType TargetType `bson:"targetType" json:"targetType" validate:"required"`
	Rating     int        `bson:"rating" json:"rating" validate:"required,min=1,max=5"`
	Comment    string     `bson:"comment" json:"comment"`
	CreatedAt  time.Time  `bson:"createdAt" json:"createdAt"`
}
