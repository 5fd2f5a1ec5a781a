// Package session models the client-held session: two values, the raw
// token and the JSON-serialized user projection, kept in an injected
// key-value store instead of a hidden global. The gate decides whether a
// stored session exists and cleans up anything it cannot read.
package session

import (
	"encoding/json"

	"github.com/avidaldev/authgate/internal/auth"
)

// Storage is the capability the gate needs from its backing store. A
// browser localStorage, a file, or a plain map all satisfy it.
type Storage interface {
	Get(key string) string
	Set(key, value string)
	Remove(key string)
}

// Keys under which the session values are stored.
const (
	TokenKey = "token"
	UserKey  = "user"
)

// Gate reads and writes the stored session.
type Gate struct {
	storage Storage
}

// NewGate wraps the given storage.
func NewGate(storage Storage) *Gate {
	return &Gate{storage: storage}
}

// Save stores the token and the serialized projection together.
func (g *Gate) Save(token string, user *auth.UserProjection) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	g.storage.Set(TokenKey, token)
	g.storage.Set(UserKey, string(raw))
	return nil
}

// Load returns the stored session. A missing token, a missing user entry or
// a user entry that does not parse all count as "no session"; a corrupt
// entry is removed on the way out so the next load starts clean.
func (g *Gate) Load() (string, *auth.UserProjection, bool) {
	token := g.storage.Get(TokenKey)
	if token == "" {
		return "", nil, false
	}

	raw := g.storage.Get(UserKey)
	if raw == "" {
		return "", nil, false
	}

	user := new(auth.UserProjection)
	if err := json.Unmarshal([]byte(raw), user); err != nil {
		g.Clear()
		return "", nil, false
	}

	return token, user, true
}

// Clear removes both entries. This is the logout action; the server keeps
// no session state, so deleting the client copy ends the session.
func (g *Gate) Clear() {
	g.storage.Remove(TokenKey)
	g.storage.Remove(UserKey)
}
