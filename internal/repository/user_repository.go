package repository

import (
	"database/sql"
	"fmt"

	"github.com/fleetflow/fleetflow-go/internal/models"
)

// UserRepository handles database operations for back-office accounts.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByEmail retrieves a user by email, or nil when absent.
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(`SELECT id, email, password_hash, name, role, created_at
		FROM users WHERE email = ?`, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// ExistsByEmail reports whether an account with the given email exists.
func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	var id int64
	err := r.db.QueryRow("SELECT id FROM users WHERE email = ?", email).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return true, nil
}

// Insert persists a new user and fills in its assigned ID.
func (r *UserRepository) Insert(u *models.User) error {
	res, err := r.db.Exec(`INSERT INTO users (email, password_hash, name, role) VALUES (?, ?, ?, ?)`,
		u.Email, u.PasswordHash, u.Name, u.Role,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read user id: %w", err)
	}
	u.ID = id
	return nil
}
