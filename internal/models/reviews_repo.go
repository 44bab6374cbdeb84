package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

type ReviewsRepo interface {
	CreateReview(ctx context.Context, review *Review) error
	ListReviewsByTarget(ctx context.Context, targetID string, targetType TargetType) ([]Review, error)
	ListReviewsByTargetID(ctx context.Context, targetID string) ([]Review, error)
}

func (mdb *MongodbRepo) CreateReview(ctx context.Context, review *Review) error {
	col, err := mdb.GetCollection(ctx, ReviewsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	if _, err := col.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("failed to insert review: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) ListReviewsByTarget(ctx context.Context, targetID string, targetType TargetType) ([]Review, error) {
	return mdb.findReviews(ctx, bson.M{"targetId": targetID, "targetType": targetType})
}

// ListReviewsByTargetID matches on the target id alone, regardless of type.
func (mdb *MongodbRepo) ListReviewsByTargetID(ctx context.Context, targetID string) ([]Review, error) {
	return mdb.findReviews(ctx, bson.M{"targetId": targetID})
}

func (mdb *MongodbRepo) findReviews(ctx context.Context, filter bson.M) ([]Review, error) {
	col, err := mdb.GetCollection(ctx, ReviewsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding reviews: %v", err)
	}
	defer cursor.Close(ctx)

	reviews := []Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("error decoding reviews: %v", err)
	}
	return reviews, nil
}
