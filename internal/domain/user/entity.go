package user

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents a document of the users collection.
// Password holds whatever the configured password scheme produced; with the
// default plaintext scheme that is the password itself.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Email    string             `bson:"email"`
	Username string             `bson:"username"`
	Password string             `bson:"password"`
}

// Public is the user without its password.
type Public struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (u User) Public() Public {
	return Public{
		ID:       u.ID.Hex(),
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
	}
}
