package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

type BookingsRepo interface {
	CreateBooking(ctx context.Context, booking *Booking) error
	ListBookingsByUser(ctx context.Context, userID string) ([]Booking, error)
}

func (mdb *MongodbRepo) CreateBooking(ctx context.Context, booking *Booking) error {
	col, err := mdb.GetCollection(ctx, BookingsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	if _, err := col.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) ListBookingsByUser(ctx context.Context, userID string) ([]Booking, error) {
	col, err := mdb.GetCollection(ctx, BookingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %v", err)
	}
	defer cursor.Close(ctx)

	bookings := []Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %v", err)
	}
	return bookings, nil
}
