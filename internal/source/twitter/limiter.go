package twitter

import (
	"errors"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// limitedDoer throttles outgoing requests with a token bucket so repeated
// manual refreshes cannot hammer the API.
type limitedDoer struct {
	client  *http.Client
	limiter *rate.Limiter
}

func newLimitedDoer(client *http.Client, perSecond float64, burst int) *limitedDoer {
	return &limitedDoer{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

// Do waits until the client is within rate limits and then performs the request.
func (c *limitedDoer) Do(req *http.Request) (*http.Response, error) {
	r := c.limiter.Reserve()
	if !r.OK() {
		return nil, errors.New("invalid limiter configuration")
	}

	delay := r.Delay()
	if delay == 0 {
		return c.client.Do(req)
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-req.Context().Done():
		r.Cancel()
		return nil, req.Context().Err()
	case <-timer.C:
		return c.client.Do(req)
	}
}
