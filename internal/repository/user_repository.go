package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"classhub/internal/entity"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. The email unique constraint is the only
// duplicate check; a violation comes back as ErrDuplicateEmail.
func (r *UserRepository) Create(name, email, passwordHash string) (entity.User, error) {
	user := entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}

	err := r.db.QueryRow(`
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, name, email, passwordHash).Scan(&user.ID, &user.CreatedAt)

	if isUniqueViolation(err) {
		return entity.User{}, ErrDuplicateEmail
	}
	if err != nil {
		return entity.User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByEmail(email string) (entity.User, error) {
	var user entity.User

	err := r.db.QueryRow(`
		SELECT id, name, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`, email).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return entity.User{}, ErrNotFound
	}
	if err != nil {
		return entity.User{}, fmt.Errorf("get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByID(id int) (entity.User, error) {
	var user entity.User

	err := r.db.QueryRow(`
		SELECT id, name, email, password_hash, created_at
		FROM users
		WHERE id = $1
	`, id).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return entity.User{}, ErrNotFound
	}
	if err != nil {
		return entity.User{}, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}
