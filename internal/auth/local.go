package auth

import (
	"errors"

	"github.com/AdityasahuX07/Lens-Time/internal"
)

// LocalProvider accepts the single token configured for this install.
// The tracker is a single-user application, so there is no user lookup.
type LocalProvider struct {
	token  string
	logger internal.Logger
}

func NewLocalProvider(token string, logger internal.Logger) *LocalProvider {
	return &LocalProvider{token: token, logger: logger}
}

func (p *LocalProvider) ValidateToken(token string) error {
	if token == p.token {
		return nil
	}
	p.logger.Warnf("auth: invalid token presented")
	return errors.New("invalid token")
}

var _ Provider = (*LocalProvider)(nil)
