package directory

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed users.json
var seedFS embed.FS

// seedUser mirrors the JSON fixture; unlike User it accepts the password
// field, which only ever travels from the fixture into the database.
type seedUser struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       int    `json:"age"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Seed creates the users table and loads the embedded fixture into it.
// It runs once at startup; the directory is treated as immutable afterwards.
func (s *Store) Seed(ctx context.Context) error {
	raw, err := seedFS.ReadFile("users.json")
	if err != nil {
		return fmt.Errorf("directory: read seed fixture: %w", err)
	}

	var seeds []seedUser
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return fmt.Errorf("directory: parse seed fixture: %w", err)
	}

	return s.SeedUsers(ctx, usersFromSeeds(seeds))
}

// SeedUsers creates the users table and inserts the given records. Tests
// call it directly with their own fixtures.
func (s *Store) SeedUsers(ctx context.Context, users []*User) error {
	if _, err := s.db.NewCreateTable().
		Model((*User)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("directory: create users table: %w", err)
	}

	if len(users) == 0 {
		return nil
	}

	if _, err := s.db.NewInsert().
		Model(&users).
		Exec(ctx); err != nil {
		return fmt.Errorf("directory: insert seed users: %w", err)
	}

	s.logger.Info("directory seeded", "users", len(users))
	return nil
}

func usersFromSeeds(seeds []seedUser) []*User {
	users := make([]*User, 0, len(seeds))
	for _, sd := range seeds {
		users = append(users, &User{
			ID:        sd.ID,
			FirstName: sd.FirstName,
			LastName:  sd.LastName,
			Age:       sd.Age,
			Email:     sd.Email,
			Password:  sd.Password,
		})
	}
	return users
}
