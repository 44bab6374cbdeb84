package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CatalogRepo interface {
	ListVenues(ctx context.Context, filter VenueFilter) ([]Venue, error)
	GetVenueByID(ctx context.Context, id string) (*Venue, error)
	ListSuppliers(ctx context.Context, filter SupplierFilter) ([]Supplier, error)
	GetSupplierByID(ctx context.Context, id string) (*Supplier, error)
	UpdateTargetAggregates(ctx context.Context, targetType TargetType, targetID string, rating float64, reviewCount int) error
}

func (mdb *MongodbRepo) ListVenues(ctx context.Context, filter VenueFilter) ([]Venue, error) {
	col, err := mdb.GetCollection(ctx, VenuesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, filter.Query())
	if err != nil {
		return nil, fmt.Errorf("error finding venues: %v", err)
	}
	defer cursor.Close(ctx)

	venues := []Venue{}
	if err := cursor.All(ctx, &venues); err != nil {
		return nil, fmt.Errorf("error decoding venues: %v", err)
	}
	return venues, nil
}

func (mdb *MongodbRepo) GetVenueByID(ctx context.Context, id string) (*Venue, error) {
	col, err := mdb.GetCollection(ctx, VenuesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var venue Venue
	if err := col.FindOne(ctx, bson.M{"id": id}).Decode(&venue); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find venue: %v", err)
	}
	return &venue, nil
}

func (mdb *MongodbRepo) ListSuppliers(ctx context.Context, filter SupplierFilter) ([]Supplier, error) {
	col, err := mdb.GetCollection(ctx, SuppliersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, filter.Query())
	if err != nil {
		return nil, fmt.Errorf("error finding suppliers: %v", err)
	}
	defer cursor.Close(ctx)

	suppliers := []Supplier{}
	if err := cursor.All(ctx, &suppliers); err != nil {
		return nil, fmt.Errorf("error decoding suppliers: %v", err)
	}
	return suppliers, nil
}

func (mdb *MongodbRepo) GetSupplierByID(ctx context.Context, id string) (*Supplier, error) {
	col, err := mdb.GetCollection(ctx, SuppliersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var supplier Supplier
	if err := col.FindOne(ctx, bson.M{"id": id}).Decode(&supplier); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find supplier: %v", err)
	}
	return &supplier, nil
}

// UpdateTargetAggregates writes the recomputed rating and review count onto the
// venue or supplier document the reviews point at.
func (mdb *MongodbRepo) UpdateTargetAggregates(ctx context.Context, targetType TargetType, targetID string, rating float64, reviewCount int) error {
	colName, ok := targetType.Collection()
	if !ok {
		return fmt.Errorf("unknown target type: %s", targetType)
	}

	col, err := mdb.GetCollection(ctx, colName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	update := bson.M{"$set": bson.M{
		"rating":      rating,
		"reviewCount": reviewCount,
	}}
	if _, err := col.UpdateOne(ctx, bson.M{"id": targetID}, update); err != nil {
		return fmt.Errorf("failed to update target aggregates: %v", err)
	}
	return nil
}
