package transport

import "net/http"

// APIKeyHeader is the header that carries the API token.
const APIKeyHeader = "X-Dataverse-key"

// UnblockKeyParam is the query parameter that carries the unblock key for
// admin endpoints.
const UnblockKeyParam = "unblock-key"

// applyAuth attaches credentials to the outgoing request. Exactly one
// delivery is used for the API key: the X-Dataverse-key header, or basic
// auth with the key as username and an empty password. An empty API key
// means anonymous access and nothing is attached.
func (c *Client) applyAuth(hr *http.Request, req *Request) {
	if c.cfg.APIKey != "" {
		if req.BasicAuth {
			hr.SetBasicAuth(c.cfg.APIKey, "")
		} else {
			hr.Header.Set(APIKeyHeader, c.cfg.APIKey)
		}
	}

	if req.UnblockKey && c.cfg.UnblockKey != "" {
		q := hr.URL.Query()
		q.Set(UnblockKeyParam, c.cfg.UnblockKey)
		hr.URL.RawQuery = q.Encode()
	}
}
