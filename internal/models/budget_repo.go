package models

import (
	"context"
	"fmt"
)

type BudgetRepo interface {
	SaveBudgetPlan(ctx context.Context, plan *BudgetPlan) error
}

func (mdb *MongodbRepo) SaveBudgetPlan(ctx context.Context, plan *BudgetPlan) error {
	col, err := mdb.GetCollection(ctx, BudgetPlansColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	if _, err := col.InsertOne(ctx, plan); err != nil {
		return fmt.Errorf("failed to insert budget plan: %v", err)
	}
	return nil
}
