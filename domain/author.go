package domain

import (
	"context"
	"time"
)

// User represents a user entity in the system.
// This core never writes users; it only resolves authors for display.
type User struct {
	ID        int64     // Unique identifier
	Name      string    // Display name
	Username  string    // Login username (unique)
	CreatedAt time.Time // Account creation timestamp
	UpdatedAt time.Time // Last profile update timestamp
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// GetByIDs retrieves users by the given IDs. Missing IDs are skipped.
	GetByIDs(ctx context.Context, userIDs []int64) ([]User, error)
}
