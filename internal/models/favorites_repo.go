package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FavoritesRepo interface {
	FindFavorite(ctx context.Context, userID, targetID string) (*Favorite, error)
	InsertFavorite(ctx context.Context, favorite *Favorite) error
	DeleteFavorite(ctx context.Context, id string) error
	ListFavoritesByUser(ctx context.Context, userID string) ([]Favorite, error)
}

func (mdb *MongodbRepo) FindFavorite(ctx context.Context, userID, targetID string) (*Favorite, error) {
	col, err := mdb.GetCollection(ctx, FavoritesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var fav Favorite
	if err := col.FindOne(ctx, bson.M{"userId": userID, "targetId": targetID}).Decode(&fav); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding favorite: %v", err)
	}
	return &fav, nil
}

func (mdb *MongodbRepo) InsertFavorite(ctx context.Context, favorite *Favorite) error {
	col, err := mdb.GetCollection(ctx, FavoritesColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	if _, err := col.InsertOne(ctx, favorite); err != nil {
		return fmt.Errorf("failed to insert favorite: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) DeleteFavorite(ctx context.Context, id string) error {
	col, err := mdb.GetCollection(ctx, FavoritesColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	if _, err := col.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("failed to delete favorite: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) ListFavoritesByUser(ctx context.Context, userID string) ([]Favorite, error) {
	col, err := mdb.GetCollection(ctx, FavoritesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("error finding favorites: %v", err)
	}
	defer cursor.Close(ctx)

	favorites := []Favorite{}
	if err := cursor.All(ctx, &favorites); err != nil {
		return nil, fmt.Errorf("error decoding favorites: %v", err)
	}
	return favorites, nil
}
