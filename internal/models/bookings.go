package models

import (
	"time"
)

const BookingStatusPending = "pending"

type Booking struct {
	ID         string     `bson:"id" json:"id"`
	UserID     string     `bson:"userId" json:"userId"`
	TargetID   string     `bson:"targetId" json:"targetId" validate:"required"`
	TargetType TargetType `bson:"targetType" json:"targetType" validate:"required"`
	Date       string     `bson:"date" json:"date" validate:"required"`
	Notes      string     `bson:"notes" json:"notes"`
	Status     string     `bson:"status" json:"status"`
	CreatedAt  time.Time  `bson:"createdAt" json:"createdAt"`
}
