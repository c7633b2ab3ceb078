package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Genre struct {
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

type Director struct {
	Name      string     `bson:"name" json:"name"`
	Biography string     `bson:"biography,omitempty" json:"biography,omitempty"`
	Birth     *time.Time `bson:"birth,omitempty" json:"birth,omitempty"`
	Death     *time.Time `bson:"death,omitempty" json:"death,omitempty"`
}

// Movie is a catalog entry. The catalog is maintained out of band; this
// service only reads movies and references them from favorites lists.
type Movie struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Genre       Genre              `bson:"genre" json:"genre"`
	Director    Director           `bson:"director" json:"director"`
	ImagePath   string             `bson:"imagePath,omitempty" json:"imagePath,omitempty"`
	Actors      []string           `bson:"actors" json:"actors"`
	Featured    bool               `bson:"featured" json:"featured"`
}
