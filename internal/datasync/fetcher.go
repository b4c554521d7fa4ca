package datasync

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"
)

// Fetcher retrieves the manifest and the files it lists.
type Fetcher interface {
	FetchManifest(ctx context.Context, url string) (*Manifest, error)
	FetchFile(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher implements Fetcher over HTTP. Individual GETs are retried a
// few times against transient transport failures; the update attempt as a
// whole is never repeated automatically. Retry policy across attempts
// belongs to the caller.
type HTTPFetcher struct {
	client   *resty.Client
	attempts uint
}

// NewHTTPFetcher creates an HTTPFetcher.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		client:   resty.New().SetTimeout(30 * time.Second),
		attempts: 3,
	}
}

// FetchManifest downloads and decodes the update manifest.
func (f *HTTPFetcher) FetchManifest(ctx context.Context, url string) (*Manifest, error) {
	body, err := f.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch manifest > %w", err)
	}

	var manifest Manifest
	if err := json.Unmarshal(body, &manifest); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(manifest) > %w", err)
	}
	return &manifest, nil
}

// FetchFile downloads one content file, returning the opaque body.
func (f *HTTPFetcher) FetchFile(ctx context.Context, url string) ([]byte, error) {
	body, err := f.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch file > %w", err)
	}
	return body, nil
}

func (f *HTTPFetcher) get(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	err := retry.Do(
		func() error {
			res, err := f.client.R().SetContext(ctx).Get(url)
			if err != nil {
				return fmt.Errorf("client.R().Get(%s) > %w", url, err)
			}
			if res.StatusCode() != http.StatusOK {
				return fmt.Errorf("status code: %d, url: %s", res.StatusCode(), url)
			}
			body = res.Body()
			return nil
		},
		retry.Attempts(f.attempts),
		retry.Delay(500*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return ctx.Err() == nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return body, nil
}
