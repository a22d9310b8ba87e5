// Package db wires the database connection, schema migrations, and the
// repositories handed to services.
package db

import (
	"context"
	"database/sql"

	"github.com/zarclabs/zarc-auth/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Close() error
}
