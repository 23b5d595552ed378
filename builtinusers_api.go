package dataverse

import (
	"context"

	"github.com/dans-knaw/go-dataverse/models"
	"github.com/dans-knaw/go-dataverse/transport"
)

// BuiltinUsersAPI wraps the builtin-users endpoint. It requires the
// builtin-user key from the configuration in addition to the regular API
// key; the key and the new account's password travel as query parameters.
type BuiltinUsersAPI struct {
	c *Client
}

// Create creates a builtin user account. The created user and its API
// token arrive in data.
func (a *BuiltinUsersAPI) Create(ctx context.Context, user models.BuiltinUser, password string) (*Response[models.BuiltinUserCreated], error) {
	opts := []transport.Option{
		transport.WithQueryParam("key", a.c.cfg.BuiltinUserKey),
		transport.WithQueryParam("password", password),
	}
	return postJSON[models.BuiltinUserCreated](ctx, a.c, "builtin-users", user, opts...)
}
