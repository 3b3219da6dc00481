package db

import (
	"database/sql"
	"errors"
	"strings"

	"guestbook-api/models"

	"github.com/google/uuid"
)

var ErrDuplicateUsername = errors.New("el usuario ya existe")

// InsertUser registra un usuario nuevo. El id lo asigna el almacén. La
// restricción UNIQUE sobre username es la garantía atómica contra dos
// registros concurrentes con el mismo email.
func (s *Store) InsertUser(u *models.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	_, err := s.db.Exec(
		"INSERT INTO users (id, username, password, role) VALUES (?, ?, ?, ?)",
		u.ID, u.Username, u.Password, u.Role,
	)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrDuplicateUsername
	}
	return err
}

// UserByUsername devuelve nil sin error cuando el usuario no existe.
func (s *Store) UserByUsername(username string) (*models.User, error) {
	row := s.db.QueryRow(
		"SELECT id, username, password, role FROM users WHERE username = ?",
		username,
	)
	var u models.User
	if err := row.Scan(&u.ID, &u.Username, &u.Password, &u.Role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
