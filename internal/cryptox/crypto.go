// Package cryptox holds the key-derivation primitives behind stored
// credentials: PBKDF2 with fixed parameters, salt generation and the text
// encodings used for storage.
//
// The parameters are not configurable. Every stored credential depends on
// them, so changing any of them is a data migration.
package cryptox

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"

	"github.com/dmitrijs2005/pwcred/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

const (
	Iterations = 10000
	KeyLength  = 512 // bytes
	Digest     = "sha1"
	SaltLength = 128 // random bytes before base64
)

// ErrUnsupportedDigest is returned by DeriveKey for an unknown digest name.
var ErrUnsupportedDigest = errors.New("unsupported digest")

var digests = map[string]func() hash.Hash{
	"sha1":   sha1.New,
	"sha256": sha256.New,
	"sha512": sha512.New,
}

// DeriveKey runs PBKDF2 over password and salt with Iterations rounds and
// produces KeyLength bytes using the named digest.
func DeriveKey(password, salt []byte, digest string) ([]byte, error) {
	h, ok := digests[digest]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDigest, digest)
	}
	return pbkdf2.Key(password, salt, Iterations, KeyLength, h), nil
}

// NewSalt returns SaltLength random bytes encoded as standard base64.
//
// The encoded text, not the raw bytes, is what gets fed to DeriveKey.
// Credentials created before this package existed were derived that way
// and must keep verifying.
func NewSalt() (string, error) {
	b, err := common.RandomBytes(SaltLength)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// EncodeKey renders a derived key for storage.
func EncodeKey(key []byte) string {
	return hex.EncodeToString(key)
}

// Equal compares two encoded keys in constant time.
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
