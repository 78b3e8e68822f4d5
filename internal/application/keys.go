package application

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bnema/insightly-cli/internal/adapters/httpapi"
	"github.com/bnema/insightly-cli/internal/domain"
	"github.com/bnema/insightly-cli/internal/querycache"
)

var (
	KeyInsights        = querycache.NewKey("insights")
	KeyToday           = KeyInsights.Child("today")
	KeyDashboard       = querycache.NewKey("dashboard")
	KeyUser            = querycache.NewKey("auth", "user")
	KeyIntegrations    = querycache.NewKey("integrations")
	KeyIntegrationList = KeyIntegrations.Child("list")
	KeyGAProperties    = KeyIntegrations.Child("ga", "properties")
	KeyMetaAccounts    = KeyIntegrations.Child("meta", "accounts")
)

const (
	StaleToday        = 2 * time.Minute
	StaleDashboard    = 2 * time.Minute
	StaleDetail       = 5 * time.Minute
	StaleHistory      = 5 * time.Minute
	StaleUser         = 5 * time.Minute
	StaleIntegrations = 10 * time.Minute

	// ReadRetries is how many extra attempts a failed read gets.
	ReadRetries    = 2
	ReadRetryDelay = time.Second
)

func DetailKey(id domain.InsightID) querycache.Key {
	return KeyInsights.Child("detail", int64(id))
}

func HistoryKey(filter domain.HistoryFilter) querycache.Key {
	return KeyInsights.Child("history", fmt.Sprintf("days=%d&severity=%s&status=%s", filter.Days, filter.Severity, filter.Status))
}

// RetryableRead reports whether a failed read may be attempted again.
// Authentication, authorization and missing resources are final.
func RetryableRead(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, httpapi.ErrSessionExpired),
		errors.Is(err, querycache.ErrCanceled),
		errors.Is(err, context.Canceled):
		return false
	}

	switch httpapi.StatusCode(err) {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return false
	}
	return true
}

// NewQueryCache returns a cache with the read retry policy applied.
func NewQueryCache(opts ...querycache.Option) *querycache.Cache {
	return querycache.New(append([]querycache.Option{querycache.WithRetry(ReadRetries, ReadRetryDelay, RetryableRead)}, opts...)...)
}
