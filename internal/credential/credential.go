// Package credential turns plaintext passwords into stored credentials and
// checks plaintext passwords against them.
//
// A Credential is the pair {hash, salt}: salt is 128 random bytes in base64,
// hash is the hex PBKDF2 output derived from the password and the salt text
// with the parameters fixed in package cryptox.
package credential

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/pwcred/internal/common"
	"github.com/dmitrijs2005/pwcred/internal/cryptox"
	"github.com/dmitrijs2005/pwcred/internal/kdfpool"
	"github.com/dmitrijs2005/pwcred/internal/logging"
	"github.com/dmitrijs2005/pwcred/internal/strength"
)

// Credential is the stored form of one password.
type Credential struct {
	Hash string `json:"hash"`
	Salt string `json:"salt"`
}

// Credential returns c itself, so *Credential can be used wherever a record
// holding a credential is expected.
func (c *Credential) Credential() Credential {
	return *c
}

// SetCredential replaces both fields at once.
func (c *Credential) SetCredential(nc Credential) {
	*c = nc
}

// Hasher creates and verifies credentials. It is safe for concurrent use.
type Hasher struct {
	pool    *kdfpool.Pool
	log     logging.Logger
	policy  func(string) bool
	newSalt func() (string, error)
	digest  string
}

// Option configures a Hasher.
type Option func(*Hasher)

// WithPool sets the pool derivations run on.
func WithPool(p *kdfpool.Pool) Option {
	return func(h *Hasher) { h.pool = p }
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(h *Hasher) { h.log = l }
}

// WithPolicy replaces the strength check applied by Create.
func WithPolicy(fn func(string) bool) Option {
	return func(h *Hasher) { h.policy = fn }
}

// WithSaltSource replaces the salt generator.
func WithSaltSource(fn func() (string, error)) Option {
	return func(h *Hasher) { h.newSalt = fn }
}

// NewHasher returns a Hasher using strength.IsValid, cryptox.NewSalt and a
// pool sized to GOMAXPROCS unless overridden.
func NewHasher(opts ...Option) *Hasher {
	h := &Hasher{
		log:     logging.Nop(),
		policy:  strength.IsValid,
		newSalt: cryptox.NewSalt,
		digest:  cryptox.Digest,
	}
	for _, o := range opts {
		o(h)
	}
	if h.pool == nil {
		h.pool = kdfpool.New(0)
	}
	if h.log == nil {
		h.log = logging.Nop()
	}
	return h
}

// Create validates password and returns a fresh credential for it.
//
// An empty password fails with common.ErrInvalidInput and a password the
// policy rejects with common.ErrWeakPassword; neither consumes entropy.
// Salt or derivation failures are reported as common.ErrInternalCrypto.
func (h *Hasher) Create(ctx context.Context, password string) (Credential, error) {
	if password == "" {
		return Credential{}, fmt.Errorf("%w: missing password", common.ErrInvalidInput)
	}
	if !h.policy(password) {
		h.log.Debug(ctx, "password rejected by policy")
		return Credential{}, common.ErrWeakPassword
	}

	salt, err := h.newSalt()
	if err != nil {
		h.log.Error(ctx, "salt generation failed", "error", err)
		return Credential{}, fmt.Errorf("%w: %w", common.ErrInternalCrypto, err)
	}

	hash, err := h.derive(ctx, password, salt)
	if err != nil {
		return Credential{}, err
	}

	return Credential{Hash: hash, Salt: salt}, nil
}

// Verify reports whether password matches the stored hash and salt.
// A mismatch is false with a nil error. Empty arguments fail with
// common.ErrInvalidInput; a missing salt is never treated as "no salt".
func (h *Hasher) Verify(ctx context.Context, password, hash, salt string) (bool, error) {
	if password == "" {
		return false, fmt.Errorf("%w: missing password", common.ErrInvalidInput)
	}
	if hash == "" || salt == "" {
		return false, fmt.Errorf("%w: hash and salt are required", common.ErrInvalidInput)
	}

	candidate, err := h.derive(ctx, password, salt)
	if err != nil {
		return false, err
	}
	return cryptox.Equal(candidate, hash), nil
}

func (h *Hasher) derive(ctx context.Context, password, salt string) (string, error) {
	key, err := h.pool.Derive(ctx, []byte(password), []byte(salt), h.digest)
	if err != nil {
		if ctx.Err() != nil {
			return "", err
		}
		h.log.Error(ctx, "key derivation failed", "error", err)
		return "", fmt.Errorf("%w: %w", common.ErrInternalCrypto, err)
	}
	return cryptox.EncodeKey(key), nil
}
