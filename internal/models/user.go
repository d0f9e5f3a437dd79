// Package models contains the user records the facade reads credentials
// from and writes them to.
package models

import (
	"time"

	"github.com/dmitrijs2005/pwcred/internal/credential"
	"github.com/google/uuid"
)

// User is a record using the canonical hash/salt field names.
type User struct {
	ID        string    `json:"id"`
	UserName  string    `json:"username"`
	Hash      string    `json:"hash"`
	Salt      string    `json:"salt"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser returns a user with a fresh random ID and no credential yet.
func NewUser(userName string) *User {
	return &User{
		ID:        uuid.NewString(),
		UserName:  userName,
		CreatedAt: time.Now().UTC(),
	}
}

func (u *User) Credential() credential.Credential {
	return credential.Credential{Hash: u.Hash, Salt: u.Salt}
}

func (u *User) SetCredential(c credential.Credential) {
	u.Hash, u.Salt = c.Hash, c.Salt
}

// LegacyUser is a record that stores the derived key under "pass".
// It carries the same credential as User under a different field name.
type LegacyUser struct {
	ID       string `json:"id,omitempty"`
	UserName string `json:"username,omitempty"`
	Pass     string `json:"pass"`
	Salt     string `json:"salt"`
}

func (u *LegacyUser) Credential() credential.Credential {
	return credential.Credential{Hash: u.Pass, Salt: u.Salt}
}

func (u *LegacyUser) SetCredential(c credential.Credential) {
	u.Pass, u.Salt = c.Hash, c.Salt
}
