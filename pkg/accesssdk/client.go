package accesssdk

import (
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the access service. It serves the public
// endpoints and creates authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new access service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Session performs requests with a bearer token issued by the identity
// provider. Tokens are not refreshed; create a new Session when one expires.
// A Session is safe for concurrent use.
type Session struct {
	client *SDKClient
	token  string
}

// WithToken returns a Session that authenticates with token.
func (c *SDKClient) WithToken(token string) *Session {
	return &Session{client: c, token: token}
}
