package domain

import "time"

// Store models a rateable store. OwnerID references a User with role
// store_owner. Stores are immutable after creation.
type Store struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address,omitempty"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Rating is one user's score for one store. At most one row exists per
// (UserID, StoreID) pair; resubmission overwrites Value in place.
type Rating struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	StoreID   int64     `json:"store_id"`
	Value     int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	// MinRating and MaxRating bound the accepted rating values.
	MinRating = 1
	MaxRating = 5
)
