package auth

import (
	"encoding/base64"
	"errors"
)

// ErrMissingCredential is returned when the user id, the password, or both
// are absent from the configuration. A token is never built from only one of
// the two values.
var ErrMissingCredential = errors.New("user id and/or password missing from configuration")

// Provider produces HTTP Basic authentication tokens from configured
// credentials. Tokens are computed on demand and must never be logged.
type Provider struct {
	user     string
	password string
}

func NewProvider(user, password string) *Provider {
	return &Provider{user: user, password: password}
}

// Token returns the base64 encoding of "user:password".
func (p *Provider) Token() (string, error) {
	if p.user == "" || p.password == "" {
		return "", ErrMissingCredential
	}

	return base64.StdEncoding.EncodeToString([]byte(p.user + ":" + p.password)), nil
}

// Header returns the full value for an Authorization header.
func (p *Provider) Header() (string, error) {
	token, err := p.Token()
	if err != nil {
		return "", err
	}

	return "Basic " + token, nil
}
