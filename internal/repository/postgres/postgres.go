package postgres

import (
	"database/sql"

	"tool-rental-pos/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	*ToolRepository
}

var (
	_ repository.ToolRepository = (*Store)(nil)
	_ repository.ToolSource     = (*Store)(nil)
)

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:             db,
		ToolRepository: NewToolRepository(db),
	}
}

// Open connects to PostgreSQL and verifies the connection
func Open(connString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
