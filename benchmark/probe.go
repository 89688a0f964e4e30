package benchmark

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultProbeInterval = 1 * time.Second
	defaultProbeTimeout  = 2 * time.Second
)

// Prober polls a public URL until it answers HTTP 200. Connection
// errors and non-200 answers are expected while the deployment boots
// and are swallowed.
type Prober struct {
	client   *resty.Client
	Interval time.Duration
}

// NewProber wraps the given client. The client should carry a short
// request timeout so a hanging edge does not stall the poll loop.
func NewProber(client *resty.Client) *Prober {
	if client == nil {
		client = resty.New().SetTimeout(defaultProbeTimeout)
	}
	return &Prober{
		client:   client,
		Interval: defaultProbeInterval,
	}
}

// WaitReady returns how long it took for url to answer 200.
func (p *Prober) WaitReady(ctx context.Context, url string) (time.Duration, error) {
	start := time.Now()

	for {
		resp, err := p.client.R().SetContext(ctx).Get(url)
		if err == nil && resp.StatusCode() == http.StatusOK {
			return time.Since(start), nil
		}

		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(p.Interval):
		}
	}
}
