// Package security hashes and verifies user passwords.
//
// New hashes are salted (argon2id by default, bcrypt optionally). Verification
// also accepts unsalted SHA-256 digests written by earlier deployments so that
// those accounts can still log in and be upgraded on their next login.
package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"employee_management/internal/utils"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Scheme names a password hashing algorithm
type Scheme string

const (
	SchemeArgon2id Scheme = "argon2id"
	SchemeBcrypt   Scheme = "bcrypt"
	SchemeLegacy   Scheme = "sha256"
)

var (
	// ErrMismatch is returned when a password does not match the stored hash
	ErrMismatch = errors.New("password does not match")
	// ErrUnknownHash is returned when the stored value is in no recognised format
	ErrUnknownHash = errors.New("unrecognised password hash format")
	// ErrPasswordTooLong is returned when the scheme cannot hash a password of this length
	ErrPasswordTooLong = errors.New("password too long")
)

// Argon2Params controls argon2id cost
type Argon2Params struct {
	Memory  uint32 // KiB
	Time    uint32
	Threads uint8
	SaltLen uint32
	KeyLen  uint32
}

// DefaultArgon2Params follows the RFC 9106 second recommended option
var DefaultArgon2Params = Argon2Params{Memory: 64 * 1024, Time: 3, Threads: 2, SaltLen: 16, KeyLen: 32}

// Hasher creates and verifies password hashes
type Hasher struct {
	scheme     Scheme
	argon      Argon2Params
	bcryptCost int
}

// NewHasher returns a Hasher writing hashes with scheme
func NewHasher(scheme Scheme) (*Hasher, error) {
	switch scheme {
	case SchemeArgon2id, SchemeBcrypt:
	default:
		return nil, fmt.Errorf("unsupported password hash scheme %q", scheme)
	}
	return &Hasher{scheme: scheme, argon: DefaultArgon2Params, bcryptCost: bcrypt.DefaultCost}, nil
}

// WithArgon2Params returns a copy of h using p for new argon2id hashes
func (h *Hasher) WithArgon2Params(p Argon2Params) *Hasher {
	c := *h
	c.argon = p
	return &c
}

// WithBcryptCost returns a copy of h using cost for new bcrypt hashes
func (h *Hasher) WithBcryptCost(cost int) *Hasher {
	c := *h
	c.bcryptCost = cost
	return &c
}

// Scheme returns the scheme used for new hashes
func (h *Hasher) Scheme() Scheme { return h.scheme }

// Hash returns a salted hash of password in the configured scheme
func (h *Hasher) Hash(password string) (string, error) {
	switch h.scheme {
	case SchemeBcrypt:
		b, err := bcrypt.GenerateFromPassword([]byte(password), h.bcryptCost)
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong // bcrypt reads at most 72 bytes
		}
		if err != nil {
			return "", fmt.Errorf("bcrypt: %w", err)
		}
		return string(b), nil
	default:
		return h.hashArgon2(password)
	}
}

// Verify checks password against stored, whatever scheme stored was written with
func (h *Hasher) Verify(stored, password string) error {
	switch Detect(stored) {
	case SchemeArgon2id:
		return verifyArgon2(stored, password)
	case SchemeBcrypt:
		if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)); err != nil {
			if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
				return ErrMismatch
			}
			return fmt.Errorf("bcrypt: %w", err)
		}
		return nil
	case SchemeLegacy:
		if subtle.ConstantTimeCompare([]byte(stored), []byte(utils.LegacyDigest(password))) != 1 {
			return ErrMismatch
		}
		return nil
	default:
		return ErrUnknownHash
	}
}

// NeedsRehash reports whether stored should be replaced by a fresh hash
func (h *Hasher) NeedsRehash(stored string) bool {
	s := Detect(stored)
	if s != h.scheme {
		return true
	}
	if s == SchemeArgon2id {
		p, _, _, err := decodeArgon2(stored)
		return err != nil || p.Memory != h.argon.Memory || p.Time != h.argon.Time || p.Threads != h.argon.Threads
	}
	if s == SchemeBcrypt {
		cost, err := bcrypt.Cost([]byte(stored))
		return err != nil || cost != h.bcryptCost
	}
	return false
}

// Detect identifies the scheme of a stored hash, or "" if unknown
func Detect(stored string) Scheme {
	switch {
	case strings.HasPrefix(stored, "$argon2id$"):
		return SchemeArgon2id
	case strings.HasPrefix(stored, "$2a$"), strings.HasPrefix(stored, "$2b$"), strings.HasPrefix(stored, "$2y$"):
		return SchemeBcrypt
	case utils.IsLegacyDigest(stored):
		return SchemeLegacy
	default:
		return ""
	}
}

func (h *Hasher) hashArgon2(password string) (string, error) {
	salt := make([]byte, h.argon.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}
	key := argon2.IDKey([]byte(password), salt, h.argon.Time, h.argon.Memory, h.argon.Threads, h.argon.KeyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.argon.Memory, h.argon.Time, h.argon.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

func verifyArgon2(stored, password string) error {
	p, salt, key, err := decodeArgon2(stored)
	if err != nil {
		return err
	}
	other := argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Threads, uint32(len(key)))
	if subtle.ConstantTimeCompare(key, other) != 1 {
		return ErrMismatch
	}
	return nil
}

// decodeArgon2 parses $argon2id$v=19$m=65536,t=3,p=2$salt$key
func decodeArgon2(stored string) (Argon2Params, []byte, []byte, error) {
	var p Argon2Params
	parts := strings.Split(stored, "$")
	if len(parts) != 6 {
		return p, nil, nil, ErrUnknownHash
	}
	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return p, nil, nil, ErrUnknownHash
	}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return p, nil, nil, ErrUnknownHash
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, ErrUnknownHash
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return p, nil, nil, ErrUnknownHash
	}
	p.SaltLen = uint32(len(salt))
	p.KeyLen = uint32(len(key))
	return p, salt, key, nil
}
