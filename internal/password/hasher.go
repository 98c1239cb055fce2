package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/auth-server/internal/model"
)

const (
	saltLen = 16
	keyLen  = 32

	// Upper bounds for parameters read from stored hashes.
	maxMemKiB uint32 = 1024 * 1024
	maxTime   uint32 = 16
	maxKeyLen        = 128
)

// Default argon2id parameters.
const (
	DefaultTime   uint32 = 1
	DefaultMemKiB uint32 = 64 * 1024
	DefaultPar    uint8  = 4
)

var (
	ErrEmptyPassword = errors.New("password cannot be empty")
	ErrInvalidHash   = errors.New("invalid password hash")
)

var _ model.PasswordHasher = (*Hasher)(nil)

// Params holds argon2id cost parameters.
type Params struct {
	Time   uint32
	MemKiB uint32
	Par    uint8
}

// Hasher hashes passwords with argon2id and verifies both argon2id and
// legacy bcrypt hashes.
type Hasher struct {
	params Params
}

// NewHasher creates a Hasher. Zero parameters fall back to defaults and
// parameters above the verification bounds are clamped.
func NewHasher(params Params) *Hasher {
	if params.Time == 0 {
		params.Time = DefaultTime
	}
	if params.MemKiB == 0 {
		params.MemKiB = DefaultMemKiB
	}
	if params.Par == 0 {
		params.Par = DefaultPar
	}
	params.MemKiB = min(params.MemKiB, maxMemKiB)
	params.Time = min(params.Time, maxTime)
	return &Hasher{params: params}
}

// Hash returns a PHC-encoded argon2id hash:
// $argon2id$v=19$m=<mem>,t=<time>,p=<par>$<salt>$<key>
func (h *Hasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}

	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(plain), salt, h.params.Time, h.params.MemKiB, h.params.Par, keyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.params.MemKiB, h.params.Time, h.params.Par,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Compare reports whether plain matches hash. A mismatch is (false, nil);
// an unparseable hash is an error.
func (h *Hasher) Compare(plain, hash string) (bool, error) {
	if isBcrypt(hash) {
		err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrInvalidHash, err)
		}
		return true, nil
	}

	return compareArgon2id(plain, hash)
}

// NeedsUpgrade reports whether hash was produced by a weaker scheme or
// with lower cost than the current parameters.
func (h *Hasher) NeedsUpgrade(hash string) bool {
	if !strings.HasPrefix(hash, "$argon2id$") {
		return true
	}
	p, _, _, err := parseArgon2id(hash)
	if err != nil {
		return true
	}
	return p.Time < h.params.Time || p.MemKiB < h.params.MemKiB || p.Par < h.params.Par
}

func isBcrypt(hash string) bool {
	return strings.HasPrefix(hash, "$2a$") || strings.HasPrefix(hash, "$2b$") || strings.HasPrefix(hash, "$2y$")
}

func compareArgon2id(plain, hash string) (bool, error) {
	p, salt, expected, err := parseArgon2id(hash)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(plain), salt, p.Time, p.MemKiB, p.Par, uint32(len(expected)))
	return subtle.ConstantTimeCompare(computed, expected) == 1, nil
}

func parseArgon2id(hash string) (Params, []byte, []byte, error) {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return Params{}, nil, nil, fmt.Errorf("%w: unsupported format", ErrInvalidHash)
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return Params{}, nil, nil, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	if version != argon2.Version {
		return Params{}, nil, nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidHash, version)
	}

	var mem, t, par uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &t, &par); err != nil {
		return Params{}, nil, nil, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	if par == 0 || par > 255 || t == 0 || t > maxTime || mem == 0 || mem > maxMemKiB {
		return Params{}, nil, nil, fmt.Errorf("%w: bad parameters", ErrInvalidHash)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return Params{}, nil, nil, fmt.Errorf("%w: salt: %v", ErrInvalidHash, err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 || len(key) > maxKeyLen {
		return Params{}, nil, nil, fmt.Errorf("%w: key", ErrInvalidHash)
	}

	return Params{Time: t, MemKiB: mem, Par: uint8(par)}, salt, key, nil
}
