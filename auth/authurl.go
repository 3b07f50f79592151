package auth

import (
	"fmt"
	"net/url"

	"clilogin/internal/config"
)

// BuildAuthURL composes the identity provider's login URL for the given
// environment. Entries with a nil value are omitted entirely rather than
// encoded as empty strings; non-nil values are set on the base URL,
// overwriting any same-named query parameter already present.
func BuildAuthURL(env config.Environment, params map[string]*string) (string, error) {
	base, err := env.BaseURL()
	if err != nil {
		return "", err
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base URL: %w", err)
	}

	q := u.Query()
	for key, value := range params {
		if value == nil {
			continue
		}
		q.Set(key, *value)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}
