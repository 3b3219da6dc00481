package db

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// Store envuelve la conexión a la base de datos. Se abre una sola vez al
// arrancar el proceso y se cierra al apagarlo.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	s := &Store{db: conn}
	if err := s.createTables(); err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		role TEXT CHECK(role IN ('admin', 'usuario')) NOT NULL
	);
	CREATE TABLE IF NOT EXISTS comments (
		id TEXT PRIMARY KEY,
		fecha TEXT NOT NULL,
		apellido TEXT NOT NULL,
		nombre TEXT NOT NULL,
		email TEXT NOT NULL,
		asunto TEXT NOT NULL,
		mensaje TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(query)
	return err
}
