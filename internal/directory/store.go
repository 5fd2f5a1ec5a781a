package directory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/avidaldev/authgate/internal/auth"
	"github.com/avidaldev/authgate/internal/logging"
)

// Store is the read-only lookup over the users table. It satisfies
// auth.IdentityProvider.
type Store struct {
	db     *bun.DB
	logger logging.Logger
}

var _ auth.IdentityProvider = (*Store)(nil)

// Open connects to the SQLite database at dsn and returns a Store.
// The default DSN is an in-memory database, matching the static record-set
// model: the process owns its own copy of the directory.
func Open(dsn string, logger logging.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, fmt.Errorf("directory: open database: %w", err)
	}

	// In-memory SQLite is per-connection unless the cache is shared; a
	// single pooled connection keeps the seeded table visible either way.
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		sqldb.SetMaxOpenConns(1)
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())

	return &Store{db: db, logger: logger}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// FindByEmailAndPassword returns the first record matching both values
// exactly (case-sensitive). Email uniqueness is an assumed precondition of
// the seed data, not something the lookup enforces; with duplicates the
// lowest id wins.
func (s *Store) FindByEmailAndPassword(ctx context.Context, email, password string) (*User, error) {
	user := new(User)

	err := s.db.NewSelect().
		Model(user).
		Where("usr.email = ?", email).
		Where("usr.password = ?", password).
		Order("usr.id ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("directory: lookup failed: %w", err)
	}

	return user, nil
}

// VerifyIdentity implements auth.IdentityProvider. Unknown email and wrong
// password both come back as auth.ErrIdentityNotFound.
func (s *Store) VerifyIdentity(ctx context.Context, email, password string) (*auth.UserProjection, error) {
	user, err := s.FindByEmailAndPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return user.Projection(), nil
}
