package dataverse

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dans-knaw/go-dataverse/config"
	"github.com/dans-knaw/go-dataverse/logger"
	"github.com/dans-knaw/go-dataverse/transport"
)

// Client is the entry point to a Dataverse server. It hands out
// per-resource accessors that share one read-only configuration and one
// transport; it is safe for concurrent use.
type Client struct {
	cfg config.Config
	t   *transport.Client
	log *logger.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLogger attaches a logger. Without it the client is silent.
func WithLogger(log *logger.Logger) ClientOption {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a client for the server in cfg. Defaults are applied
// and the configuration is validated before any request is made.
func NewClient(cfg config.Config, opts ...ClientOption) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{cfg: cfg, log: logger.Nop()}
	for _, opt := range opts {
		opt(c)
	}

	t, err := transport.New(cfg, c.log)
	if err != nil {
		return nil, err
	}
	c.t = t

	return c, nil
}

// Config returns a copy of the client configuration.
func (c *Client) Config() config.Config {
	return c.cfg
}

// Transport returns the underlying transport client, for endpoints this
// package does not wrap.
func (c *Client) Transport() *transport.Client {
	return c.t
}

// Dataverse returns the accessor for the collection with the given alias
// ("root" is the server root collection).
func (c *Client) Dataverse(alias string) *CollectionAPI {
	return &CollectionAPI{c: c, alias: alias}
}

// Dataset returns the accessor for a dataset.
func (c *Client) Dataset(id Identifier) *DatasetAPI {
	return &DatasetAPI{c: c, id: id}
}

// File returns the accessor for a file.
func (c *Client) File(id Identifier) *FileAPI {
	return &FileAPI{c: c, id: id}
}

// Admin returns the accessor for the admin endpoint family. Calls are
// unversioned and send the configured unblock key.
func (c *Client) Admin() *AdminAPI {
	return &AdminAPI{c: c}
}

// BuiltinUsers returns the accessor for builtin user accounts.
func (c *Client) BuiltinUsers() *BuiltinUsersAPI {
	return &BuiltinUsersAPI{c: c}
}

// Sword returns the accessor for the SWORD deposit protocol family, which
// authenticates via basic auth instead of the API-key header.
func (c *Client) Sword() *SwordAPI {
	return &SwordAPI{c: c}
}

// Typed dispatch helpers shared by the endpoint wrappers. Methods cannot
// introduce type parameters, hence package-level functions.

func get[T any](ctx context.Context, c *Client, subPath string, opts ...transport.Option) (*Response[T], error) {
	raw, err := c.t.Get(ctx, subPath, opts...)
	if err != nil {
		return nil, err
	}
	return NewResponse[T](raw), nil
}

func postJSON[T any](ctx context.Context, c *Client, subPath string, body any, opts ...transport.Option) (*Response[T], error) {
	raw, err := c.t.PostJSON(ctx, subPath, body, opts...)
	if err != nil {
		return nil, err
	}
	return NewResponse[T](raw), nil
}

func putJSON[T any](ctx context.Context, c *Client, subPath string, body any, opts ...transport.Option) (*Response[T], error) {
	raw, err := c.t.Put(ctx, subPath, body, opts...)
	if err != nil {
		return nil, err
	}
	return NewResponse[T](raw), nil
}

func putText[T any](ctx context.Context, c *Client, subPath string, body string, opts ...transport.Option) (*Response[T], error) {
	raw, err := c.t.PutText(ctx, subPath, body, opts...)
	if err != nil {
		return nil, err
	}
	return NewResponse[T](raw), nil
}

func del[T any](ctx context.Context, c *Client, subPath string, opts ...transport.Option) (*Response[T], error) {
	raw, err := c.t.Delete(ctx, subPath, opts...)
	if err != nil {
		return nil, err
	}
	return NewResponse[T](raw), nil
}

func postMultipart[T any](ctx context.Context, c *Client, subPath string, file *transport.FileField, meta any, opts ...transport.Option) (*Response[T], error) {
	var jsonData []byte
	if meta != nil {
		var err error
		jsonData, err = json.Marshal(meta)
		if err != nil {
			return nil, fmt.Errorf("dataverse: encode jsonData: %w", err)
		}
	}
	raw, err := c.t.PostMultipart(ctx, subPath, file, jsonData, opts...)
	if err != nil {
		return nil, err
	}
	return NewResponse[T](raw), nil
}
