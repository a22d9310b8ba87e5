package users

import "context"

// Repository is the persistence boundary for accounts.
//
// Lookups return common.ErrorNotFound when no row matches. Create relies on
// the storage-level unique indexes as the authoritative duplicate guard and
// reports conflicts as common.ErrorEmailExists / common.ErrorUsernameExists.
type Repository interface {
	Create(ctx context.Context, account *Account) (*Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByUsername(ctx context.Context, username string) (*Account, error)

	// FindByLogin matches login against either email or username in a
	// single lookup.
	FindByLogin(ctx context.Context, login string) (*Account, error)
}
