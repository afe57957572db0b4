package llm

import (
	"context"
	"errors"
)

var errNotConfigured = errors.New("not configured")

// unavailableProvider stands in when no usable credential was found. The
// app still starts; every generation fails with ErrProviderUnavailable.
type unavailableProvider struct {
	name   string
	reason error
}

// Unavailable returns a Provider whose every call fails, wrapping reason.
func Unavailable(name string, reason error) Provider {
	return &unavailableProvider{name: name, reason: reason}
}

func (u *unavailableProvider) Generate(context.Context, Request) (*Response, error) {
	return nil, &ErrProviderUnavailable{
		Provider: u.name,
		Err:      errors.Join(errNotConfigured, u.reason),
	}
}

func (u *unavailableProvider) Name() string    { return u.name }
func (u *unavailableProvider) ModelID() string { return "" }
