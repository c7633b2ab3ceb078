package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/myflix/myflix-api/internal/domain"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *userRepository {
	collection := db.Collection("users")

	// Unique index on userName; duplicate signups fail at insert instead
	// of racing a separate existence check.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "userName", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		logrus.WithError(err).Warn("failed to create unique index on userName")
	}

	return &userRepository{collection: collection}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.FavoriteMovies == nil {
		user.FavoriteMovies = []primitive.ObjectID{}
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByUserName(ctx context.Context, userName string) (*domain.User, error) {
	var user domain.User
	err := r.collection.FindOne(ctx, bson.M{"userName": userName}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	user.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"userName":  user.UserName,
			"email":     user.Email,
			"password":  user.PasswordHash,
			"birthday":  user.Birthday,
			"updatedAt": user.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": user.ID}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, userName string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"userName": userName})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) AddFavorite(ctx context.Context, userName string, movieID primitive.ObjectID) (*domain.User, error) {
	return r.updateFavorites(ctx, userName, bson.M{"$addToSet": bson.M{"favoriteMovies": movieID}})
}

func (r *userRepository) RemoveFavorite(ctx context.Context, userName string, movieID primitive.ObjectID) (*domain.User, error) {
	return r.updateFavorites(ctx, userName, bson.M{"$pull": bson.M{"favoriteMovies": movieID}})
}

func (r *userRepository) updateFavorites(ctx context.Context, userName string, update bson.M) (*domain.User, error) {
	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"userName": userName},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		if errors.Is(result.Err(), mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update favorites: %w", result.Err())
	}

	var user domain.User
	if err := result.Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode updated user: %w", err)
	}
	return &user, nil
}
