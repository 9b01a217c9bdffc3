package correlation

import "time"

// RetryPolicy bounds the link retry loop. The delay grows with the attempt
// number: attempt n waits BaseDelay * n.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// DefaultRetryPolicy matches the staging pipeline's tuning: up to 10
// attempts starting at 100ms.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 10,
		BaseDelay:   100 * time.Millisecond,
	}
}

// Delay returns how long to wait before the given 1-based attempt.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return p.BaseDelay * time.Duration(attempt)
}
