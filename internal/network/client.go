package network

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Noooste/azuretls-client"
	"golang.org/x/net/proxy"
)

// ProxyProvider provides proxy configuration.
// This interface is defined here to avoid import cycles with service package.
type ProxyProvider interface {
	GetProxyURL(ctx context.Context) string
}

// ClientFactory creates outbound HTTP clients for the speech and translation
// backends, honouring the configured proxy.
type ClientFactory struct {
	proxyProvider  ProxyProvider
	timeout        time.Duration
	testHTTPClient *http.Client // For testing only
}

// NewClientFactory creates a new client factory. A nil provider means no proxy.
func NewClientFactory(proxyProvider ProxyProvider, timeout time.Duration) *ClientFactory {
	if proxyProvider == nil {
		proxyProvider = noopProxyProvider{}
	}
	return &ClientFactory{proxyProvider: proxyProvider, timeout: timeout}
}

// NewClientFactoryForTest creates a client factory that uses the given http.Client for testing.
// This is only for use in tests.
func NewClientFactoryForTest(client *http.Client) *ClientFactory {
	return &ClientFactory{
		proxyProvider:  noopProxyProvider{},
		testHTTPClient: client,
	}
}

type noopProxyProvider struct{}

func (noopProxyProvider) GetProxyURL(ctx context.Context) string {
	return ""
}

// Timeout returns the per-request timeout applied to created clients.
func (f *ClientFactory) Timeout() time.Duration {
	return f.timeout
}

// NewHTTPClient creates a standard http.Client with proxy configuration.
func (f *ClientFactory) NewHTTPClient(ctx context.Context) *http.Client {
	if f.testHTTPClient != nil {
		return f.testHTTPClient
	}

	client := &http.Client{Timeout: f.timeout}
	if proxyURL := f.proxyProvider.GetProxyURL(ctx); proxyURL != "" {
		client.Transport = newTransportWithProxy(proxyURL)
	}
	return client
}

// NewAzureSession creates an azuretls.Session with a Chrome TLS profile and
// proxy configuration. Callers must Close it.
func (f *ClientFactory) NewAzureSession(ctx context.Context) *azuretls.Session {
	session := azuretls.NewSession()
	session.Browser = azuretls.Chrome
	if f.timeout > 0 {
		session.SetTimeout(f.timeout)
	}

	if proxyURL := f.proxyProvider.GetProxyURL(ctx); proxyURL != "" {
		_ = session.SetProxy(proxyURL)
	}
	return session
}

// Fetcher returns the browser-profile fetcher used for Google web endpoints.
// Test factories fall back to the injected http.Client.
func (f *ClientFactory) Fetcher() Fetcher {
	if f.testHTTPClient != nil {
		return &httpFetcher{factory: f}
	}
	return &azureFetcher{factory: f}
}

// newTransportWithProxy creates an http.Transport with proper proxy support.
// For SOCKS5 proxies, it uses golang.org/x/net/proxy for correct handling.
// For HTTP/HTTPS proxies, it uses the standard http.ProxyURL.
func newTransportWithProxy(proxyURL string) *http.Transport {
	parsed, err := url.Parse(proxyURL)
	if err != nil {
		return &http.Transport{}
	}

	if strings.HasPrefix(parsed.Scheme, "socks") {
		var auth *proxy.Auth
		if parsed.User != nil {
			auth = &proxy.Auth{
				User: parsed.User.Username(),
			}
			if password, ok := parsed.User.Password(); ok {
				auth.Password = password
			}
		}

		dialer, err := proxy.SOCKS5("tcp", parsed.Host, auth, proxy.Direct)
		if err != nil {
			return &http.Transport{}
		}

		return &http.Transport{
			DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			},
		}
	}

	return &http.Transport{
		Proxy: http.ProxyURL(parsed),
	}
}
