package transport

// DefaultPrefix is the path prefix of the native API.
const DefaultPrefix = "api"

// Request describes one outbound API call. Built fresh per call and not
// mutated after construction; the same Request is reissued verbatim by the
// retry policy.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, DELETE).
	Method string
	// SubPath is the endpoint path below the prefix/version segment,
	// e.g. "dataverses/root/datasets".
	SubPath string
	// Body is the request body, already encoded. Buffered as bytes so the
	// retry policy can replay it.
	Body []byte
	// ContentType is set as Content-Type when a body is present.
	ContentType string
	// Headers are extra request headers.
	Headers map[string]string
	// Query are extra query parameters.
	Query map[string]string
	// Prefix overrides DefaultPrefix (the SWORD family lives under its own
	// prefix). Empty means DefaultPrefix.
	Prefix string
	// Unversioned omits the v{version} path segment (admin family).
	Unversioned bool
	// BasicAuth delivers the API key as basic-auth credentials instead of
	// the X-Dataverse-key header (SWORD family).
	BasicAuth bool
	// UnblockKey appends the configured unblock key as a query parameter
	// (admin family).
	UnblockKey bool
}

// NewRequest builds a Request with the given method and sub-path and
// applies the options.
func NewRequest(method, subPath string, opts ...Option) *Request {
	req := &Request{Method: method, SubPath: subPath}
	for _, opt := range opts {
		opt(req)
	}
	return req
}

// Option configures a single request.
type Option func(*Request)

// WithHeader adds a header to the request.
func WithHeader(key, value string) Option {
	return func(r *Request) {
		if r.Headers == nil {
			r.Headers = make(map[string]string)
		}
		r.Headers[key] = value
	}
}

// WithQueryParam adds a query parameter to the request.
func WithQueryParam(key, value string) Option {
	return func(r *Request) {
		if r.Query == nil {
			r.Query = make(map[string]string)
		}
		r.Query[key] = value
	}
}

// WithPrefix replaces the API path prefix for this request.
func WithPrefix(prefix string) Option {
	return func(r *Request) {
		r.Prefix = prefix
	}
}

// Unversioned omits the version segment from the request path.
func Unversioned() Option {
	return func(r *Request) {
		r.Unversioned = true
	}
}

// ViaBasicAuth delivers the API key as basic-auth credentials for this
// request. The X-Dataverse-key header is then not sent.
func ViaBasicAuth() Option {
	return func(r *Request) {
		r.BasicAuth = true
	}
}

// WithUnblockKey appends the configured unblock key to the query string.
func WithUnblockKey() Option {
	return func(r *Request) {
		r.UnblockKey = true
	}
}

// Response is the raw result of a successful API call: status, headers and
// body bytes. It is transient and not retained beyond the call; typed views
// are derived from it by the dataverse package.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Status is the HTTP status line.
	Status string
	// Headers are the response headers, flattened to single values.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
