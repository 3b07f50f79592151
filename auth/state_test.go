package auth_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"clilogin/auth"
)

func TestEncodeState(t *testing.T) {
	require.JSONEq(t, `{"id":"abcd1234"}`, auth.EncodeState("abcd1234"))
}

func TestDecodeState(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		st := auth.DecodeState(auth.EncodeState("abcd1234"))
		require.Equal(t, "abcd1234", st.ID)
	})

	t.Run("malformed input never fails", func(t *testing.T) {
		for _, input := range []string{"", "not json", "{", `["array"]`, "42"} {
			st := auth.DecodeState(input)
			require.Empty(t, st.ID, "input %q should decode to an empty state", input)
		}
	})

	t.Run("object without id", func(t *testing.T) {
		st := auth.DecodeState(`{"other":"x"}`)
		require.Empty(t, st.ID)
	})
}
