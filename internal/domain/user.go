package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserName       string               `bson:"userName" json:"userName"`
	Email          string               `bson:"email" json:"email"`
	PasswordHash   string               `bson:"password" json:"-"`
	Birthday       *time.Time           `bson:"birthday,omitempty" json:"birthday,omitempty"`
	FavoriteMovies []primitive.ObjectID `bson:"favoriteMovies" json:"favoriteMovies"`
	CreatedAt      time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// PublicUser is the client-facing projection of a User. It is the only
// user shape that may be serialized in a response; the password hash
// stays server-side.
type PublicUser struct {
	ID             string     `json:"id"`
	UserName       string     `json:"userName"`
	Email          string     `json:"email"`
	Birthday       *time.Time `json:"birthday,omitempty"`
	FavoriteMovies []string   `json:"favoriteMovies"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func (u *User) Public() *PublicUser {
	favorites := make([]string, len(u.FavoriteMovies))
	for i, id := range u.FavoriteMovies {
		favorites[i] = id.Hex()
	}

	return &PublicUser{
		ID:             u.ID.Hex(),
		UserName:       u.UserName,
		Email:          u.Email,
		Birthday:       u.Birthday,
		FavoriteMovies: favorites,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

// HasFavorite reports whether movieID is already on the user's list.
func (u *User) HasFavorite(movieID primitive.ObjectID) bool {
	for _, id := range u.FavoriteMovies {
		if id == movieID {
			return true
		}
	}
	return false
}
