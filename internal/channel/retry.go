package channel

// RetryPolicy retries a failing operation a bounded number of times.
// Indefinite retry is deliberately not supported: the failures this guards
// against are transient, and a deterministic failure should surface fast.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int

	// Retryable reports whether an error is worth another attempt.
	// Nil means every error is retryable.
	Retryable func(error) bool

	// OnFailure runs between attempts with the discarded error.
	// It does not run for the final failure, which is returned.
	OnFailure func(attempt int, err error)
}

// Do runs fn until it succeeds, exhausts MaxAttempts, or hits a
// non-retryable error. The last error is returned.
func (p RetryPolicy) Do(fn func() error) error {
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if attempt >= p.MaxAttempts || (p.Retryable != nil && !p.Retryable(err)) {
			return err
		}
		if p.OnFailure != nil {
			p.OnFailure(attempt, err)
		}
	}
}
