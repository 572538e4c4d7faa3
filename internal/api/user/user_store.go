package user

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/shopmesh/auth-service/internal/api/auth"
	"github.com/shopmesh/auth-service/internal/db"
)

// duplicate entry for a unique key
const mysqlErrDuplicateEntry = 1062

// Store is the MySQL-backed credential store. The UNIQUE KEY on
// users.email makes the insert the authoritative uniqueness check: a
// lost race shows up as a duplicate-entry error, not a second row.
type Store struct {
	db *sql.DB
}

func NewStore(database *sql.DB) *Store {
	return &Store{db: database}
}

func (s *Store) CreateUser(email, passwordHash string, profile db.Profile) (uuid.UUID, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return uuid.Nil, err
	}

	_, err = s.db.Exec(`
		INSERT INTO users (id, email, password_hash, first_name, last_name, age, phone, gender)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id.String(), email, passwordHash,
		profile.FirstName, profile.LastName, profile.Age, profile.Phone, profile.Gender)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return uuid.Nil, auth.ErrDuplicateIdentity
		}
		return uuid.Nil, err
	}

	return id, nil
}

func (s *Store) GetUserByEmail(email string) (*db.User, error) {
	var u db.User
	var id string
	err := s.db.QueryRow(`
		SELECT id, email, password_hash, first_name, last_name, age, phone, gender, created_at
		FROM users WHERE email = ?`, email).
		Scan(&id, &u.Email, &u.PasswordHash,
			&u.FirstName, &u.LastName, &u.Age, &u.Phone, &u.Gender, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	u.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	return &u, nil
}
