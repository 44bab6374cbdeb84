package models

import (
	"time"
)

// Favorite marks a (user, target) pair. Its presence in storage is the whole
// signal; toggling off deletes the document.
type Favorite struct {
	ID         string     `bson:"id" json:"id"`
	UserID     string     `bson:"userId" json:"userId"`
	TargetID   string     `bson:"targetId" json:"targetId"`
	TargetType TargetType `bson:"targetType" json:"targetType"`
	CreatedAt  time.Time  `bson:"createdAt" json:"createdAt"`
}
