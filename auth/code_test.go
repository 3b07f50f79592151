package auth_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"clilogin/auth"
)

func TestTransformCode(t *testing.T) {
	t.Run("identity for auth_code", func(t *testing.T) {
		got, err := auth.TransformCode("my-auth-code", auth.CodeTypeAuthCode)
		require.NoError(t, err)
		require.Equal(t, "my-auth-code", got)
	})

	t.Run("identity for unknown and absent code types", func(t *testing.T) {
		for _, codeType := range []string{"", "something_else"} {
			got, err := auth.TransformCode("raw-code", codeType)
			require.NoError(t, err)
			require.Equal(t, "raw-code", got)
		}
	})

	t.Run("access token round trips through JSON", func(t *testing.T) {
		token := map[string]any{
			"access_token": "opaque",
			"expires_in":   float64(3600),
		}
		encoded, err := json.Marshal(token)
		require.NoError(t, err)

		got, err := auth.TransformCode(string(encoded), auth.CodeTypeAccessToken)
		require.NoError(t, err)
		require.Equal(t, token, got)
	})

	t.Run("malformed access token is a hard error", func(t *testing.T) {
		_, err := auth.TransformCode("not json", auth.CodeTypeAccessToken)
		require.Error(t, err)
		require.Contains(t, err.Error(), "parse access token")
	})
}
