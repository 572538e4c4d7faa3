package db

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Profile carries the optional account fields. They are opaque to the
// auth subsystem: stored at registration, embedded in token claims at
// login, never validated here.
type Profile struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Age       int    `json:"age,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Gender    string `json:"gender,omitempty"`
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Profile
	CreatedAt time.Time `json:"createdAt"`
}

// PublicUser is the view of an account returned to callers. It never
// carries the password hash.
type PublicUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Profile
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:      u.ID,
		Email:   u.Email,
		Profile: u.Profile,
	}
}

// Claims is the payload signed into every access token: an identity
// snapshot taken at issuance time. If the user record changes later,
// outstanding tokens keep the old values until they expire.
type Claims struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	Profile
	jwt.RegisteredClaims
}

func (c *Claims) Public() PublicUser {
	return PublicUser{
		ID:      c.UserID,
		Email:   c.Email,
		Profile: c.Profile,
	}
}
