package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/planora/planora-go/internal/model"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateUser = errors.New("username or email already exists")
)

// userColumns is the scan order shared by all user queries.
const userColumns = `id, name, surname, username, email, password_hash, phone, created_at, updated_at`

// UserRepository handles user persistence operations.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and sets the generated ID on the user
// struct. The users table is unique on both username and email.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (name, surname, username, email, password_hash, phone) VALUES (?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		user.Name, user.Surname, user.Username, user.Email, user.PasswordHash, user.Phone,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateUser
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	user.ID = id
	return nil
}

// GetByIdentifier retrieves a user whose username or email matches the
// given login identifier.
func (r *UserRepository) GetByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = ? OR email = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, identifier, identifier))
}

// GetByID retrieves a user by their ID.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// UpdateProfile applies a partial profile update and returns the
// updated user. Only the whitelisted profile columns can change; the
// password hash is not reachable through this path.
func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, req model.UpdateProfileRequest) (*model.User, error) {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)

	add := func(column string, value *string) {
		if value != nil {
			sets = append(sets, column+" = ?")
			args = append(args, *value)
		}
	}
	add("name", req.Name)
	add("surname", req.Surname)
	add("username", req.Username)
	add("email", req.Email)
	add("phone", req.Phone)

	if len(sets) > 0 {
		args = append(args, id)
		query := `UPDATE users SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			if isDuplicateEntryError(err) {
				return nil, ErrDuplicateUser
			}
			return nil, err
		}
	}

	return r.GetByID(ctx, id)
}

func (r *UserRepository) scanOne(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.ID, &user.Name, &user.Surname, &user.Username, &user.Email,
		&user.PasswordHash, &user.Phone, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// isDuplicateEntryError checks if a MySQL error is a duplicate entry error (code 1062).
func isDuplicateEntryError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}
