package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func fastHasher() *Hasher {
	return NewHasher(Params{Time: 1, MemKiB: 1024, Par: 1})
}

func TestHasher_HashAndCompare(t *testing.T) {
	h := fastHasher()

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=1024,t=1,p=1$"))

	ok, err := h.Compare("correct horse", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Compare("wrong horse", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasher_SaltsDiffer(t *testing.T) {
	h := fastHasher()

	a, err := h.Hash("pw")
	require.NoError(t, err)
	b, err := h.Hash("pw")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestHasher_EmptyPassword(t *testing.T) {
	_, err := fastHasher().Hash("")
	require.ErrorIs(t, err, ErrEmptyPassword)
}

func TestHasher_CompareBcrypt(t *testing.T) {
	legacy, err := bcrypt.GenerateFromPassword([]byte("legacy-pw"), bcrypt.MinCost)
	require.NoError(t, err)

	h := fastHasher()

	ok, err := h.Compare("legacy-pw", string(legacy))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Compare("nope", string(legacy))
	require.NoError(t, err)
	assert.False(t, ok)

	assert.True(t, h.NeedsUpgrade(string(legacy)))
}

func TestHasher_CompareInvalidHash(t *testing.T) {
	h := fastHasher()

	tests := []string{
		"",
		"plain",
		"$argon2i$v=19$m=1024,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=18$m=1024,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=1024,t=1,p=0$c2FsdA$a2V5",
		"$argon2id$v=19$m=1024,t=1,p=1$!!!$a2V5",
		"$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$",
		"$argon2id$v=19$m=2097152,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=0,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=1024,t=1000,p=1$c2FsdA$a2V5",
	}
	for _, hash := range tests {
		t.Run(hash, func(t *testing.T) {
			ok, err := h.Compare("pw", hash)
			require.ErrorIs(t, err, ErrInvalidHash)
			assert.False(t, ok)
		})
	}
}

func TestHasher_NeedsUpgrade(t *testing.T) {
	weak := fastHasher()
	hash, err := weak.Hash("pw")
	require.NoError(t, err)

	assert.False(t, weak.NeedsUpgrade(hash))
	assert.True(t, NewHasher(Params{Time: 2, MemKiB: 1024, Par: 1}).NeedsUpgrade(hash))
}

func TestNewHasher_Defaults(t *testing.T) {
	h := NewHasher(Params{})
	assert.Equal(t, Params{Time: DefaultTime, MemKiB: DefaultMemKiB, Par: DefaultPar}, h.params)
}

func TestNewHasher_ClampsToVerificationBounds(t *testing.T) {
	h := NewHasher(Params{Time: 100, MemKiB: 4 * 1024 * 1024, Par: 1})
	assert.Equal(t, Params{Time: maxTime, MemKiB: maxMemKiB, Par: 1}, h.params)
}
