package auth

import (
	"encoding/json"
	"fmt"
)

// CodeType values the provider may attach to a callback.
const (
	CodeTypeAuthCode    = "auth_code"
	CodeTypeAccessToken = "access_token"
)

// TransformCode converts the raw code value from a callback into what the
// caller receives. A declared access token is a JSON document and is parsed
// into a map; the provider asserts its shape, so malformed JSON here is a hard
// error rather than something to recover from (contrast DecodeState). Every
// other code type passes the code through unchanged.
func TransformCode(code, codeType string) (any, error) {
	if codeType != CodeTypeAccessToken {
		return code, nil
	}
	var token map[string]any
	if err := json.Unmarshal([]byte(code), &token); err != nil {
		return nil, fmt.Errorf("parse access token: %w", err)
	}
	return token, nil
}
