package cryptox_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sundialhq/sundial/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "cryptox-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := cryptox.HashPassword("Abcd1234")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	require.NoError(t, cryptox.VerifyPassword("Abcd1234", hash))
	require.ErrorIs(t, cryptox.VerifyPassword("abcd1234", hash), cryptox.ErrPasswordMismatch)
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := cryptox.HashPassword("same-password")
	require.NoError(t, err)
	second, err := cryptox.HashPassword("same-password")
	require.NoError(t, err)

	// Random salt means two hashes of the same input never collide.
	require.NotEqual(t, first, second)
	require.NoError(t, cryptox.VerifyPassword("same-password", first))
	require.NoError(t, cryptox.VerifyPassword("same-password", second))
}

func TestVerifyPasswordRejectsGarbage(t *testing.T) {
	require.Error(t, cryptox.VerifyPassword("whatever", "not-a-phc-string"))
	require.Error(t, cryptox.VerifyPassword("whatever", "$bcrypt$v=19$m=1,t=1,p=1$AAAA$BBBB"))
}

func TestGenerateNumericCode(t *testing.T) {
	seen := map[string]struct{}{}
	for range 50 {
		code, err := cryptox.GenerateNumericCode(6)
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, c := range code {
			require.True(t, c >= '0' && c <= '9', "digit out of range: %q", code)
		}
		seen[code] = struct{}{}
	}
	// 50 draws from a million-code space should essentially never all collide.
	require.Greater(t, len(seen), 1)

	_, err := cryptox.GenerateNumericCode(0)
	require.Error(t, err)
}
