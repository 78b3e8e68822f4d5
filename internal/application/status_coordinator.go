package application

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/insightly-cli/internal/domain"
	"github.com/bnema/insightly-cli/internal/logging"
	"github.com/bnema/insightly-cli/internal/ports"
	"github.com/bnema/insightly-cli/internal/querycache"
)

const DefaultSnoozeHours = 24

type StatusOptions struct {
	// SnoozedHours is sent only with StatusSnoozed. Zero lets the server pick.
	SnoozedHours int
}

// statusPatch is the optimistic change one mutation applies to cached reads.
type statusPatch struct {
	id     domain.InsightID
	update domain.StatusUpdate
}

func (p statusPatch) applyDetail(old any) (any, bool) {
	detail, ok := old.(*domain.InsightDetail)
	if !ok || detail == nil || detail.Insight.ID != p.id {
		return nil, false
	}
	next := *detail
	next.Insight = detail.Insight.WithStatus(p.update.Status)
	return &next, true
}

func (p statusPatch) applyToday(old any) (any, bool) {
	today, ok := old.(*domain.TodaysIssues)
	if !ok || today == nil {
		return nil, false
	}
	next := today.WithInsightStatus(p.id, p.update.Status)
	return &next, true
}

// undoSnapshot holds the cached reads exactly as they were before the patch.
type undoSnapshot struct {
	detail querycache.Snapshot
	today  querycache.Snapshot
}

func (u undoSnapshot) restore(cache *querycache.Cache) {
	cache.Restore(u.detail)
	cache.Restore(u.today)
}

type mutation struct {
	id        string
	seq       uint64
	patch     statusPatch
	undo      undoSnapshot
	startedAt time.Time
}

// StatusCoordinator applies insight status changes optimistically. Cached
// reads show the new status while the server call is outstanding, then take
// the server's record on success or return to their previous values on
// failure. Mutations of the same insight run one at a time.
type StatusCoordinator struct {
	api   ports.InsightAPI
	cache *querycache.Cache
	clock ports.Clock

	mu      sync.Mutex
	seq     uint64
	pending map[string]*mutation
	locks   map[domain.InsightID]*insightLock
}

type insightLock struct {
	ch   chan struct{}
	refs int
}

func NewStatusCoordinator(api ports.InsightAPI, cache *querycache.Cache, clock ports.Clock) *StatusCoordinator {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &StatusCoordinator{
		api:     api,
		cache:   cache,
		clock:   clock,
		pending: map[string]*mutation{},
		locks:   map[domain.InsightID]*insightLock{},
	}
}

func (c *StatusCoordinator) UpdateStatus(ctx context.Context, id domain.InsightID, status domain.InsightStatus, opts StatusOptions) (domain.Insight, error) {
	if id <= 0 {
		return domain.Insight{}, fmt.Errorf("invalid insight id %d", id)
	}
	update := domain.StatusUpdate{Status: status}
	if status == domain.StatusSnoozed {
		update.SnoozedHours = opts.SnoozedHours
	}
	if err := update.Validate(); err != nil {
		return domain.Insight{}, err
	}

	m := &mutation{
		id:        uuid.NewString(),
		patch:     statusPatch{id: id, update: update},
		startedAt: c.clock.Now(),
	}
	c.track(m)
	defer c.untrack(m.id)

	unlock, err := c.lock(ctx, id)
	if err != nil {
		return domain.Insight{}, err
	}
	defer unlock()

	detailKey := DetailKey(id)
	c.cache.Cancel(detailKey)
	c.cache.Cancel(KeyToday)

	m.undo = undoSnapshot{
		detail: c.cache.Snapshot(detailKey),
		today:  c.cache.Snapshot(KeyToday),
	}
	c.cache.Update(detailKey, m.patch.applyDetail)
	c.cache.Update(KeyToday, m.patch.applyToday)

	logging.Debug().Str("mutation", m.id).Int64("insight_id", int64(id)).Str("status", string(status)).Msg("status update started")

	insight, err := c.api.UpdateInsightStatus(ctx, id, update)
	if err != nil {
		m.undo.restore(c.cache)
		logging.Debug().Str("mutation", m.id).Err(err).Msg("status update rolled back")
		return domain.Insight{}, err
	}

	c.cache.Update(detailKey, func(old any) (any, bool) {
		detail, ok := old.(*domain.InsightDetail)
		if !ok || detail == nil {
			return nil, false
		}
		next := *detail
		next.Insight = insight
		return &next, true
	})
	c.cache.Invalidate(KeyToday)
	c.cache.Invalidate(KeyInsights)
	c.cache.Invalidate(KeyDashboard)

	logging.Debug().Str("mutation", m.id).Dur("took", c.clock.Now().Sub(m.startedAt)).Msg("status update committed")
	return insight, nil
}

// Pending returns the ids of unsettled mutations of insight id, including
// those waiting for an earlier one, oldest first.
func (c *StatusCoordinator) Pending(id domain.InsightID) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	mutations := make([]*mutation, 0, len(c.pending))
	for _, m := range c.pending {
		if m.patch.id == id {
			mutations = append(mutations, m)
		}
	}
	slices.SortFunc(mutations, func(a, b *mutation) int {
		return cmp.Compare(a.seq, b.seq)
	})

	ids := make([]string, len(mutations))
	for i, m := range mutations {
		ids[i] = m.id
	}
	return ids
}

func (c *StatusCoordinator) track(m *mutation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	m.seq = c.seq
	c.pending[m.id] = m
}

func (c *StatusCoordinator) untrack(mutationID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, mutationID)
}

// lock waits until no other mutation of id is running.
func (c *StatusCoordinator) lock(ctx context.Context, id domain.InsightID) (func(), error) {
	c.mu.Lock()
	l, ok := c.locks[id]
	if !ok {
		l = &insightLock{ch: make(chan struct{}, 1)}
		c.locks[id] = l
	}
	l.refs++
	c.mu.Unlock()

	select {
	case l.ch <- struct{}{}:
		return func() {
			<-l.ch
			c.release(id, l)
		}, nil
	case <-ctx.Done():
		c.release(id, l)
		return nil, ctx.Err()
	}
}

func (c *StatusCoordinator) release(id domain.InsightID, l *insightLock) {
	c.mu.Lock()
	defer c.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(c.locks, id)
	}
}

// StatusMessage is the confirmation shown after a successful change.
func StatusMessage(status domain.InsightStatus, snoozedHours int) string {
	switch status {
	case domain.StatusSnoozed:
		if snoozedHours <= 0 {
			snoozedHours = DefaultSnoozeHours
		}
		return fmt.Sprintf("Issue snoozed for %d hours", snoozedHours)
	case domain.StatusResolved:
		return "Issue marked as resolved"
	default:
		return "Issue reactivated"
	}
}
