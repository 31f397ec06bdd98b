package pkg

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUnknownScheme   = errors.New("unknown password scheme")
	ErrPasswordTooLong = errors.New("password too long")
)

// bcrypt only looks at the first 72 bytes and refuses longer input.
const maxBcryptPasswordLen = 72

// Hasher turns passwords into stored digests and checks them back.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// NewHasher returns the hasher for scheme ("sha256" or "bcrypt").
//
// sha256 is an unsalted fast digest kept for compatibility with existing
// rows; it does not resist offline brute force. bcrypt is the salted
// alternative. Both verify either digest format, so switching scheme only
// changes how new passwords are stored.
func NewHasher(scheme string) (Hasher, error) {
	switch scheme {
	case "", "sha256":
		return sha256Hasher{}, nil
	case "bcrypt":
		return bcryptHasher{cost: bcrypt.DefaultCost}, nil
	default:
		return nil, ErrUnknownScheme
	}
}

type sha256Hasher struct{}

func (sha256Hasher) Hash(password string) (string, error) {
	return SHA256Hex(password), nil
}

func (sha256Hasher) Verify(password, digest string) bool {
	return verifyAny(password, digest)
}

type bcryptHasher struct {
	cost int
}

func (h bcryptHasher) Hash(password string) (string, error) {
	if len(password) > maxBcryptPasswordLen {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (bcryptHasher) Verify(password, digest string) bool {
	return verifyAny(password, digest)
}

// SHA256Hex is the hex-encoded SHA-256 of password.
func SHA256Hex(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func verifyAny(password, digest string) bool {
	if strings.HasPrefix(digest, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(SHA256Hex(password)), []byte(digest)) == 1
}
