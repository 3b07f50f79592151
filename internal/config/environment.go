package config

import (
	"fmt"
	"net/url"
)

// Environment selects which login service deployment the CLI talks to.
type Environment string

const (
	EnvProd  Environment = "prod"
	EnvStage Environment = "stage"

	// DefaultEnvironment is applied at the outermost call site (the CLI
	// command), never inside library functions.
	DefaultEnvironment = EnvProd
)

// baseURLs is the fixed deployment table. Extend only by adding entries.
var baseURLs = map[Environment]string{
	EnvProd:  "https://aio-login.adobeioruntime.net/api/v1/web/default/applogin",
	EnvStage: "https://aio-login.adobeioruntime.net/api/v1/web/default/applogin-stage",
}

// BaseURL returns the login service base URL for the environment. An
// unrecognized environment is a caller error and fails loudly.
func (e Environment) BaseURL() (string, error) {
	base, ok := baseURLs[e]
	if !ok {
		return "", fmt.Errorf("unknown environment %q", string(e))
	}
	return base, nil
}

// Origin returns the scheme://host[:port] part of the environment's base URL.
// Used as the CORS allow origin, which must never be a wildcard since the
// response can carry an authorization code.
func (e Environment) Origin() (string, error) {
	base, err := e.BaseURL()
	if err != nil {
		return "", err
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base URL for %q: %w", string(e), err)
	}
	return u.Scheme + "://" + u.Host, nil
}

// Valid reports whether the environment names a known deployment.
func (e Environment) Valid() bool {
	_, ok := baseURLs[e]
	return ok
}
