package syncctl

import "time"

type config struct {
	timeout         time.Duration
	minDisplay      time.Duration
	bootstrapPoll   time.Duration
	completionDelay time.Duration
	maxRetries      int
	now             func() time.Time
	onStage         func(Stage)
}

// Option configures a Controller.
type Option func(*config)

// WithTimeout bounds a whole session, from Start to the matching sync
// result. Retries never extend it. Default: 40 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithMinDisplay sets how long each reported stage, and each early failure,
// stays visible. Default: 3 seconds.
func WithMinDisplay(d time.Duration) Option {
	return func(c *config) {
		c.minDisplay = d
	}
}

// WithBootstrapPoll sets the wait between proxy bootstrap checks.
// Default: 3 seconds.
func WithBootstrapPoll(d time.Duration) Option {
	return func(c *config) {
		c.bootstrapPoll = d
	}
}

// WithCompletionDelay sets how long the up-to-date stage is shown before
// the session completes. Default: 1 second.
func WithCompletionDelay(d time.Duration) Option {
	return func(c *config) {
		c.completionDelay = d
	}
}

// WithMaxRetries sets the number of sync attempts per session. Default: 3.
func WithMaxRetries(n int) Option {
	return func(c *config) {
		c.maxRetries = n
	}
}

// WithClock replaces time.Now for deadline checks.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// WithStageObserver registers f to be called from the loop on every stage
// change.
func WithStageObserver(f func(Stage)) Option {
	return func(c *config) {
		c.onStage = f
	}
}

func defaultConfig() config {
	return config{
		timeout:         40 * time.Second,
		minDisplay:      3 * time.Second,
		bootstrapPoll:   3 * time.Second,
		completionDelay: time.Second,
		maxRetries:      3,
		now:             time.Now,
		onStage:         func(Stage) {},
	}
}
