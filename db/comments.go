package db

import (
	"database/sql"
	"errors"

	"guestbook-api/models"

	"github.com/google/uuid"
)

func (s *Store) Comments() ([]models.Comment, error) {
	return s.queryComments("SELECT id, fecha, apellido, nombre, email, asunto, mensaje FROM comments")
}

func (s *Store) CommentsByEmail(email string) ([]models.Comment, error) {
	return s.queryComments(
		"SELECT id, fecha, apellido, nombre, email, asunto, mensaje FROM comments WHERE email = ?",
		email,
	)
}

// CommentByID devuelve nil sin error cuando el comentario no existe.
func (s *Store) CommentByID(id string) (*models.Comment, error) {
	row := s.db.QueryRow(
		"SELECT id, fecha, apellido, nombre, email, asunto, mensaje FROM comments WHERE id = ?",
		id,
	)
	var c models.Comment
	err := row.Scan(&c.ID, &c.Fecha, &c.Apellido, &c.Nombre, &c.Email, &c.Asunto, &c.Mensaje)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// InsertComment agrega un comentario. El id lo asigna el almacén.
func (s *Store) InsertComment(c *models.Comment) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := s.db.Exec(
		"INSERT INTO comments (id, fecha, apellido, nombre, email, asunto, mensaje) VALUES (?, ?, ?, ?, ?, ?, ?)",
		c.ID, c.Fecha, c.Apellido, c.Nombre, c.Email, c.Asunto, c.Mensaje,
	)
	return err
}

func (s *Store) UpdateComment(c *models.Comment) error {
	_, err := s.db.Exec(
		"UPDATE comments SET apellido = ?, nombre = ?, asunto = ?, mensaje = ? WHERE id = ?",
		c.Apellido, c.Nombre, c.Asunto, c.Mensaje, c.ID,
	)
	return err
}

func (s *Store) DeleteComment(id string) error {
	_, err := s.db.Exec("DELETE FROM comments WHERE id = ?", id)
	return err
}

// DeleteAllComments borra toda la colección y devuelve cuántos había.
func (s *Store) DeleteAllComments() (int64, error) {
	result, err := s.db.Exec("DELETE FROM comments")
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *Store) queryComments(query string, args ...interface{}) ([]models.Comment, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		err := rows.Scan(&c.ID, &c.Fecha, &c.Apellido, &c.Nombre, &c.Email, &c.Asunto, &c.Mensaje)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
