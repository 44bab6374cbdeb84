package models

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

var Validate = validator.New()

// Collection names inside the application database.
const (
	UsersColName       = "users"
	VenuesColName      = "venues"
	SuppliersColName   = "suppliers"
	ReviewsColName     = "reviews"
	FavoritesColName   = "favorites"
	BookingsColName    = "bookings"
	BudgetPlansColName = "budget_plans"
)

// MongodbRepo implements the repository interfaces against a MongoDB client.
// The client is constructed once by the composition root and injected here.
type MongodbRepo struct {
	mongodbClient *mongo.Client
	dbName        string
}

func MongodbNewRepo(mongodbClient *mongo.Client, dbName string) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
		dbName:        dbName,
	}
}

func (mdb *MongodbRepo) GetCollection(ctx context.Context, colName string) (*mongo.Collection, error) {
	if mdb.mongodbClient == nil {
		return nil, fmt.Errorf("mongodb client is not initialized")
	}
	return mdb.mongodbClient.Database(mdb.dbName).Collection(colName), nil
}
