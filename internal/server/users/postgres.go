package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/zarclabs/zarc-auth/internal/common"
	"github.com/zarclabs/zarc-auth/internal/dbx"
)

// PostgresRepository implements Repository over dbx.DBTX (satisfied by
// *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const accountColumns = `id, email, username, password_hash, first_name, last_name, company, industry, created_at`

// Create inserts a new account row. The database assigns id and created_at.
// Unique-index violations are classified into the duplicate sentinels, so
// concurrent signups racing on the same email or username decay into the
// same errors the pre-checks produce.
func (r *PostgresRepository) Create(ctx context.Context, account *Account) (*Account, error) {

	query :=
		`INSERT INTO users (email, username, password_hash, first_name, last_name, company, industry)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		account.Email, account.Username, account.PasswordHash,
		account.FirstName, account.LastName, account.Company, account.Industry,
	).Scan(&account.ID, &account.CreatedAt)

	if err != nil {
		if dup := classifyUniqueViolation(err); dup != nil {
			return nil, dup
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

// FindByEmail returns the account with the given email or common.ErrorNotFound.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	query := `SELECT ` + accountColumns + ` FROM users WHERE email = $1`
	return r.findOne(ctx, query, email)
}

// FindByUsername returns the account with the given username or common.ErrorNotFound.
func (r *PostgresRepository) FindByUsername(ctx context.Context, username string) (*Account, error) {
	query := `SELECT ` + accountColumns + ` FROM users WHERE username = $1`
	return r.findOne(ctx, query, username)
}

// FindByLogin matches login against email or username in a single query.
func (r *PostgresRepository) FindByLogin(ctx context.Context, login string) (*Account, error) {
	query := `SELECT ` + accountColumns + ` FROM users WHERE email = $1 OR username = $1`
	return r.findOne(ctx, query, login)
}

func (r *PostgresRepository) findOne(ctx context.Context, query string, arg string) (*Account, error) {
	account := &Account{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&account.ID, &account.Email, &account.Username, &account.PasswordHash,
		&account.FirstName, &account.LastName, &account.Company, &account.Industry,
		&account.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

// classifyUniqueViolation maps a Postgres unique violation (SQLSTATE 23505)
// onto the duplicate sentinels by constraint name, falling back to substring
// matching for renamed constraints.
func classifyUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	if pgErr.Code != "23505" {
		return nil
	}

	switch name := strings.ToLower(pgErr.ConstraintName); {
	case name == "users_email_key" || strings.Contains(name, "email"):
		return common.ErrorEmailExists
	case name == "users_username_key" || strings.Contains(name, "username"):
		return common.ErrorUsernameExists
	default:
		return fmt.Errorf("unique violation: %w", err)
	}
}
