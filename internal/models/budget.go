package models

import (
	"time"
)

// BudgetPlan records one successful planner exchange. SessionID correlates a
// planning conversation but carries no stored state beyond this record.
type BudgetPlan struct {
	ID          string    `bson:"id" json:"id"`
	SessionID   string    `bson:"sessionId" json:"sessionId"`
	Location    string    `bson:"location" json:"location"`
	GuestCount  int       `bson:"guestCount" json:"guestCount"`
	Budget      int       `bson:"budget" json:"budget"`
	Preferences string    `bson:"preferences" json:"preferences"`
	Plan        string    `bson:"plan" json:"plan"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
