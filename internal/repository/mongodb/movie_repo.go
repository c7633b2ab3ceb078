package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/myflix/myflix-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type movieRepository struct {
	collection *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *movieRepository {
	return &movieRepository{collection: db.Collection("movies")}
}

func (r *movieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	if movie.ID.IsZero() {
		movie.ID = primitive.NewObjectID()
	}
	if movie.Actors == nil {
		movie.Actors = []string{}
	}

	if _, err := r.collection.InsertOne(ctx, movie); err != nil {
		return fmt.Errorf("failed to create movie: %w", err)
	}
	return nil
}

func (r *movieRepository) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	opts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	defer cursor.Close(ctx)

	movies := []*domain.Movie{}
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, fmt.Errorf("failed to decode movies: %w", err)
	}
	return movies, nil
}

func (r *movieRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Movie, error) {
	return r.findOne(ctx, bson.M{"_id": id}, domain.ErrMovieNotFound)
}

func (r *movieRepository) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	return r.findOne(ctx, bson.M{"title": title}, domain.ErrMovieNotFound)
}

func (r *movieRepository) GetByGenreName(ctx context.Context, name string) (*domain.Movie, error) {
	return r.findOne(ctx, bson.M{"genre.name": name}, domain.ErrGenreNotFound)
}

func (r *movieRepository) GetByDirectorName(ctx context.Context, name string) (*domain.Movie, error) {
	return r.findOne(ctx, bson.M{"director.name": name}, domain.ErrDirectorNotFound)
}

func (r *movieRepository) findOne(ctx context.Context, filter bson.M, notFound error) (*domain.Movie, error) {
	var movie domain.Movie
	err := r.collection.FindOne(ctx, filter).Decode(&movie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound
		}
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}
	return &movie, nil
}
