package application

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/insightly-cli/internal/domain"
	"github.com/bnema/insightly-cli/internal/ports/mocks"
	"github.com/bnema/insightly-cli/internal/querycache"
)

func seededCache(t *testing.T) (*querycache.Cache, *domain.InsightDetail, *domain.TodaysIssues, *domain.DashboardSummary) {
	t.Helper()

	cache := querycache.New()
	detail := &domain.InsightDetail{
		Insight: domain.Insight{ID: 1, Title: "Checkout conversions dropped", Status: domain.StatusActive},
		Metrics: []domain.DailyMetric{{ID: 10, Sessions: 1200}},
	}
	today := &domain.TodaysIssues{
		Insights: []domain.Insight{
			{ID: 1, Title: "Checkout conversions dropped", Status: domain.StatusActive},
			{ID: 2, Title: "Meta spend spike", Status: domain.StatusActive},
		},
		Count: 2,
	}
	dashboard := &domain.DashboardSummary{TodaysIssues: 2}

	cache.Set(DetailKey(1), detail)
	cache.Set(KeyToday, today)
	cache.Set(KeyDashboard, dashboard)
	return cache, detail, today, dashboard
}

func TestUpdateStatusAppliesOptimisticValueThenServerRecord(t *testing.T) {
	api := mocks.NewMockInsightAPI(t)
	cache, _, _, _ := seededCache(t)
	coordinator := NewStatusCoordinator(api, cache, nil)

	resolvedAt := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	server := domain.Insight{ID: 1, Title: "Checkout conversions dropped", Status: domain.StatusResolved, ResolvedAt: &resolvedAt}

	api.EXPECT().UpdateInsightStatus(mock.Anything, domain.InsightID(1), domain.StatusUpdate{Status: domain.StatusResolved}).
		RunAndReturn(func(context.Context, domain.InsightID, domain.StatusUpdate) (domain.Insight, error) {
			detail, ok := querycache.Value[*domain.InsightDetail](cache, DetailKey(1))
			require.True(t, ok)
			assert.Equal(t, domain.StatusResolved, detail.Insight.Status)
			assert.Nil(t, detail.Insight.ResolvedAt)

			today, ok := querycache.Value[*domain.TodaysIssues](cache, KeyToday)
			require.True(t, ok)
			assert.Equal(t, domain.StatusResolved, today.Insights[0].Status)
			assert.Equal(t, domain.StatusActive, today.Insights[1].Status)
			assert.Equal(t, domain.InsightID(2), today.Insights[1].ID)
			return server, nil
		})

	got, err := coordinator.UpdateStatus(context.Background(), 1, domain.StatusResolved, StatusOptions{})
	require.NoError(t, err)
	assert.Equal(t, server, got)

	detail, ok := querycache.Value[*domain.InsightDetail](cache, DetailKey(1))
	require.True(t, ok)
	assert.Equal(t, server, detail.Insight)
	assert.Len(t, detail.Metrics, 1)

	assert.True(t, cache.IsStale(KeyToday, time.Hour))
	assert.True(t, cache.IsStale(DetailKey(1), time.Hour))
	assert.True(t, cache.IsStale(KeyDashboard, time.Hour))
	assert.Empty(t, coordinator.Pending(1))
}

func TestUpdateStatusRollsBackToExactSnapshot(t *testing.T) {
	api := mocks.NewMockInsightAPI(t)
	cache, detail, today, dashboard := seededCache(t)
	coordinator := NewStatusCoordinator(api, cache, nil)

	failure := errors.New("server rejected status change")
	api.EXPECT().UpdateInsightStatus(mock.Anything, domain.InsightID(1), domain.StatusUpdate{Status: domain.StatusSnoozed, SnoozedHours: 24}).
		Return(domain.Insight{}, failure)

	_, err := coordinator.UpdateStatus(context.Background(), 1, domain.StatusSnoozed, StatusOptions{SnoozedHours: 24})
	require.ErrorIs(t, err, failure)

	gotDetail, ok := cache.Get(DetailKey(1))
	require.True(t, ok)
	assert.Same(t, detail, gotDetail)
	assert.Equal(t, domain.StatusActive, detail.Insight.Status)

	gotToday, ok := cache.Get(KeyToday)
	require.True(t, ok)
	assert.Same(t, today, gotToday)

	gotDashboard, ok := cache.Get(KeyDashboard)
	require.True(t, ok)
	assert.Same(t, dashboard, gotDashboard)
	assert.False(t, cache.IsStale(KeyDashboard, time.Hour))
	assert.False(t, cache.IsStale(KeyToday, time.Hour))
}

func TestUpdateStatusOnColdCacheFabricatesNothing(t *testing.T) {
	api := mocks.NewMockInsightAPI(t)
	cache := querycache.New()
	coordinator := NewStatusCoordinator(api, cache, nil)

	api.EXPECT().UpdateInsightStatus(mock.Anything, domain.InsightID(7), domain.StatusUpdate{Status: domain.StatusActive}).
		Return(domain.Insight{ID: 7, Status: domain.StatusActive}, nil)

	_, err := coordinator.UpdateStatus(context.Background(), 7, domain.StatusActive, StatusOptions{})
	require.NoError(t, err)

	_, ok := cache.Get(DetailKey(7))
	assert.False(t, ok)
	_, ok = cache.Get(KeyToday)
	assert.False(t, ok)
}

func TestUpdateStatusRollbackOnColdCacheLeavesKeysEmpty(t *testing.T) {
	api := mocks.NewMockInsightAPI(t)
	cache := querycache.New()
	coordinator := NewStatusCoordinator(api, cache, nil)

	api.EXPECT().UpdateInsightStatus(mock.Anything, domain.InsightID(7), mock.Anything).
		Return(domain.Insight{}, errors.New("boom"))

	_, err := coordinator.UpdateStatus(context.Background(), 7, domain.StatusResolved, StatusOptions{})
	require.Error(t, err)
	assert.Empty(t, cache.Keys())
}

func TestUpdateStatusCancelsInflightDetailRead(t *testing.T) {
	api := mocks.NewMockInsightAPI(t)
	cache, _, _, _ := seededCache(t)
	cache.Invalidate(DetailKey(1))
	coordinator := NewStatusCoordinator(api, cache, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	readErr := make(chan error, 1)
	go func() {
		_, err := querycache.Fetch(context.Background(), cache, DetailKey(1), StaleDetail, func(context.Context) (*domain.InsightDetail, error) {
			close(started)
			<-release
			return &domain.InsightDetail{Insight: domain.Insight{ID: 1, Status: domain.StatusActive, Title: "late"}}, nil
		})
		readErr <- err
	}()
	<-started

	server := domain.Insight{ID: 1, Status: domain.StatusResolved, Title: "Checkout conversions dropped"}
	api.EXPECT().UpdateInsightStatus(mock.Anything, domain.InsightID(1), mock.Anything).Return(server, nil)

	_, err := coordinator.UpdateStatus(context.Background(), 1, domain.StatusResolved, StatusOptions{})
	require.NoError(t, err)

	close(release)
	require.ErrorIs(t, <-readErr, querycache.ErrCanceled)

	detail, ok := querycache.Value[*domain.InsightDetail](cache, DetailKey(1))
	require.True(t, ok)
	assert.Equal(t, server, detail.Insight)
}

func TestUpdateStatusSequencesSameInsight(t *testing.T) {
	api := mocks.NewMockInsightAPI(t)
	cache, _, _, _ := seededCache(t)
	coordinator := NewStatusCoordinator(api, cache, nil)

	var (
		mu       sync.Mutex
		order    []domain.InsightStatus
		inflight atomic.Int32
	)
	firstEntered := make(chan struct{})
	releaseFirst := make(chan struct{})

	api.EXPECT().UpdateInsightStatus(mock.Anything, domain.InsightID(1), mock.Anything).
		RunAndReturn(func(_ context.Context, id domain.InsightID, update domain.StatusUpdate) (domain.Insight, error) {
			assert.Equal(t, int32(1), inflight.Add(1))
			defer inflight.Add(-1)

			mu.Lock()
			order = append(order, update.Status)
			mu.Unlock()

			if update.Status == domain.StatusSnoozed {
				close(firstEntered)
				<-releaseFirst
			}
			return domain.Insight{ID: id, Status: update.Status}, nil
		}).Times(2)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := coordinator.UpdateStatus(context.Background(), 1, domain.StatusSnoozed, StatusOptions{SnoozedHours: 24})
		assert.NoError(t, err)
	}()
	<-firstEntered

	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := coordinator.UpdateStatus(context.Background(), 1, domain.StatusResolved, StatusOptions{})
		assert.NoError(t, err)
	}()

	require.Eventually(t, func() bool {
		return len(coordinator.Pending(1)) == 2
	}, time.Second, 5*time.Millisecond)
	assert.Empty(t, coordinator.Pending(2))

	close(releaseFirst)
	wg.Wait()

	assert.Equal(t, []domain.InsightStatus{domain.StatusSnoozed, domain.StatusResolved}, order)
	assert.Empty(t, coordinator.Pending(1))
}

func TestUpdateStatusWaitingMutationHonorsContext(t *testing.T) {
	api := mocks.NewMockInsightAPI(t)
	coordinator := NewStatusCoordinator(api, querycache.New(), nil)

	entered := make(chan struct{})
	release := make(chan struct{})
	api.EXPECT().UpdateInsightStatus(mock.Anything, domain.InsightID(3), mock.Anything).
		RunAndReturn(func(context.Context, domain.InsightID, domain.StatusUpdate) (domain.Insight, error) {
			close(entered)
			<-release
			return domain.Insight{ID: 3, Status: domain.StatusResolved}, nil
		}).Once()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = coordinator.UpdateStatus(context.Background(), 3, domain.StatusResolved, StatusOptions{})
	}()
	<-entered

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := coordinator.UpdateStatus(ctx, 3, domain.StatusActive, StatusOptions{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Len(t, coordinator.Pending(3), 1)

	close(release)
	<-done
	assert.Empty(t, coordinator.Pending(3))
}

func TestUpdateStatusRejectsInvalidInput(t *testing.T) {
	api := mocks.NewMockInsightAPI(t)
	coordinator := NewStatusCoordinator(api, querycache.New(), nil)

	_, err := coordinator.UpdateStatus(context.Background(), 0, domain.StatusResolved, StatusOptions{})
	require.Error(t, err)

	_, err = coordinator.UpdateStatus(context.Background(), 1, "archived", StatusOptions{})
	require.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = coordinator.UpdateStatus(context.Background(), 1, domain.StatusSnoozed, StatusOptions{SnoozedHours: -1})
	require.Error(t, err)
}

func TestUpdateStatusDropsSnoozeHoursForOtherStatuses(t *testing.T) {
	api := mocks.NewMockInsightAPI(t)
	coordinator := NewStatusCoordinator(api, querycache.New(), nil)

	api.EXPECT().UpdateInsightStatus(mock.Anything, domain.InsightID(4), domain.StatusUpdate{Status: domain.StatusActive}).
		Return(domain.Insight{ID: 4, Status: domain.StatusActive}, nil)

	_, err := coordinator.UpdateStatus(context.Background(), 4, domain.StatusActive, StatusOptions{SnoozedHours: 24})
	require.NoError(t, err)
}

func TestStatusMessage(t *testing.T) {
	assert.Equal(t, "Issue snoozed for 24 hours", StatusMessage(domain.StatusSnoozed, 0))
	assert.Equal(t, "Issue snoozed for 48 hours", StatusMessage(domain.StatusSnoozed, 48))
	assert.Equal(t, "Issue marked as resolved", StatusMessage(domain.StatusResolved, 0))
	assert.Equal(t, "Issue reactivated", StatusMessage(domain.StatusActive, 0))
}
