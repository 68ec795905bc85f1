package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasher_Roundtrip(t *testing.T) {
	h := NewHasher()

	encoded, err := h.Hash("pw123")
	require.NoError(t, err)

	ok, err := h.Verify("pw123", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("pw124", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasher_Encoding(t *testing.T) {
	h := NewHasher()

	encoded, err := h.Hash("pw123")
	require.NoError(t, err)

	parts := strings.Split(encoded, ":")
	require.Len(t, parts, 5)
	assert.Equal(t, "pbkdf2", parts[0])
	assert.Equal(t, "sha512", parts[1])
	assert.Equal(t, "1000", parts[2])
	assert.Len(t, parts[3], 32)  // 16 salt bytes, hex-encoded
	assert.Len(t, parts[4], 128) // 64 key bytes, hex-encoded
}

func TestHasher_DistinctSalts(t *testing.T) {
	h := NewHasher()

	first, err := h.Hash("pw123")
	require.NoError(t, err)
	second, err := h.Hash("pw123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	for _, encoded := range []string{first, second} {
		ok, err := h.Verify("pw123", encoded)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestHasher_Sha256Encoding(t *testing.T) {
	h := &Hasher{hashFunction: "sha256"}

	encoded, err := h.Hash("pw123")
	require.NoError(t, err)
	assert.Contains(t, encoded, ":sha256:")

	ok, err := NewHasher().Verify("pw123", encoded)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHasher_MalformedEncoding(t *testing.T) {
	h := NewHasher()

	tests := []struct {
		name    string
		encoded string
	}{
		{name: "empty", encoded: ""},
		{name: "too few fields", encoded: "pbkdf2:sha512:1000:abcd"},
		{name: "unknown algorithm", encoded: "bcrypt:sha512:1000:abcd:ef01"},
		{name: "unknown hash function", encoded: "pbkdf2:md5:1000:abcd:ef01"},
		{name: "bad iteration count", encoded: "pbkdf2:sha512:lots:abcd:ef01"},
		{name: "negative iteration count", encoded: "pbkdf2:sha512:-1:abcd:ef01"},
		{name: "non-hex derived hash", encoded: "pbkdf2:sha512:1000:abcd:zzzz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := h.Verify("pw123", tt.encoded)
			require.Error(t, err)
			assert.False(t, ok)
		})
	}
}
