package helpdesk

import "time"

// DefaultRetryDelay is how long to back off when the API answers 429.
const DefaultRetryDelay = 60 * time.Second

// RetryPolicy decides how long to wait before retrying a rate-limited
// request. Returning ok=false gives up on the request.
type RetryPolicy interface {
	NextDelay(attempt int) (delay time.Duration, ok bool)
}

// FixedDelay retries forever with the same pause. This is the default
// policy: rate limiting is an expected, transient condition.
type FixedDelay struct {
	Delay time.Duration
}

func (p FixedDelay) NextDelay(int) (time.Duration, bool) { return p.Delay, true }

// CappedRetries retries with a fixed pause up to Max attempts, then
// gives up.
type CappedRetries struct {
	Delay time.Duration
	Max   int
}

func (p CappedRetries) NextDelay(attempt int) (time.Duration, bool) {
	if attempt > p.Max {
		return 0, false
	}
	return p.Delay, true
}

var (
	_ RetryPolicy = FixedDelay{}
	_ RetryPolicy = CappedRetries{}
)
