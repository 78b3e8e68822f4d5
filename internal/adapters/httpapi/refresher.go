package httpapi

import (
	"context"
	"sync"
)

type refreshResult struct {
	access string
	err    error
}

// refresher serializes token refreshes. While one refresh is in flight every
// other 401 recovery queues and is settled, in arrival order, with the
// leader's outcome. A 401 that arrives after a failed refresh for the same
// token gets that failure instead of ending the session a second time.
type refresher struct {
	mu         sync.Mutex
	refreshing bool
	queue      []chan refreshResult
	failedFor  string
	failure    error
}

// await recovers a 401 for a request sent with sentWith. It returns the
// access token to replay with. current reads the stored access token and
// refresh performs one refresh against the server.
func (r *refresher) await(ctx context.Context, sentWith string, current func(context.Context) (string, error), refresh func(context.Context) (string, error)) (string, error) {
	r.mu.Lock()

	if r.refreshing {
		waiter := make(chan refreshResult, 1)
		r.queue = append(r.queue, waiter)
		r.mu.Unlock()

		select {
		case result := <-waiter:
			return result.access, result.err
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	// A 401 for a token that was already replaced is late: replay with the
	// stored token instead of refreshing again.
	if stored, err := current(ctx); err == nil && stored != "" && stored != sentWith {
		r.mu.Unlock()
		return stored, nil
	}

	if sentWith != "" && sentWith == r.failedFor {
		err := r.failure
		r.mu.Unlock()
		return "", err
	}

	r.refreshing = true
	r.mu.Unlock()

	access, err := refresh(context.WithoutCancel(ctx))

	r.mu.Lock()
	r.refreshing = false
	r.failedFor, r.failure = "", nil
	if err != nil {
		r.failedFor, r.failure = sentWith, err
	}
	queue := r.queue
	r.queue = nil
	r.mu.Unlock()

	for _, waiter := range queue {
		waiter <- refreshResult{access: access, err: err}
	}

	return access, err
}

func (r *refresher) inFlight() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshing
}

func (r *refresher) queued() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.queue)
}
