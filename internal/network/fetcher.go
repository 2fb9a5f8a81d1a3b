package network

import (
	"context"
	"io"
	"net/http"

	"github.com/Noooste/azuretls-client"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/config"
)

// FetchResult is the buffered outcome of a GET request.
type FetchResult struct {
	StatusCode  int
	Body        []byte
	ContentType string
}

// Fetcher performs GET requests and buffers the body.
type Fetcher interface {
	Get(ctx context.Context, rawURL string, headers [][]string) (*FetchResult, error)
}

// BrowserHeaders are the Chrome headers sent with every Google web request.
func BrowserHeaders(accept string) [][]string {
	return [][]string{
		{"accept", accept},
		{"accept-language", "en-US,en;q=0.9"},
		{"sec-ch-ua", config.ChromeSecChUa},
		{"sec-ch-ua-mobile", "?0"},
		{"sec-ch-ua-platform", `"Windows"`},
		{"user-agent", config.ChromeUserAgent},
	}
}

type azureFetcher struct {
	factory *ClientFactory
}

func (f *azureFetcher) Get(ctx context.Context, rawURL string, headers [][]string) (*FetchResult, error) {
	session := f.factory.NewAzureSession(ctx)
	defer session.Close()

	ordered := make(azuretls.OrderedHeaders, 0, len(headers))
	for _, h := range headers {
		ordered = append(ordered, h)
	}

	resp, err := session.Do(&azuretls.Request{
		Method:         http.MethodGet,
		Url:            rawURL,
		OrderedHeaders: ordered,
	})
	if err != nil {
		return nil, err
	}
	return &FetchResult{
		StatusCode:  resp.StatusCode,
		Body:        resp.Body,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

type httpFetcher struct {
	factory *ClientFactory
}

func (f *httpFetcher) Get(ctx context.Context, rawURL string, headers [][]string) (*FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	for _, h := range headers {
		if len(h) == 2 {
			req.Header.Set(h[0], h[1])
		}
	}

	resp, err := f.factory.NewHTTPClient(ctx).Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &FetchResult{
		StatusCode:  resp.StatusCode,
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
