package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCredentials struct {
	mu      sync.Mutex
	access  string
	refresh string
	clears  int
}

func (m *memoryCredentials) AccessToken(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.access, nil
}

func (m *memoryCredentials) RefreshToken(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refresh, nil
}

func (m *memoryCredentials) SetTokens(_ context.Context, access, refresh string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.access = access
	m.refresh = refresh
	return nil
}

func (m *memoryCredentials) ClearTokens(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.access = ""
	m.refresh = ""
	m.clears++
	return nil
}

func (m *memoryCredentials) snapshot() (string, string, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.access, m.refresh, m.clears
}

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) handle(event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) types() []EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]EventType, 0, len(r.events))
	for _, event := range r.events {
		out = append(out, event.Type)
	}
	return out
}

func newTestClient(t *testing.T, serverURL string, creds *memoryCredentials) (*Client, *recorder) {
	t.Helper()
	client, err := NewClient(Options{BaseURL: serverURL + "/api/", Credentials: creds, Timeout: 5 * time.Second})
	require.NoError(t, err)
	rec := &recorder{}
	client.Subscribe(rec.handle)
	return client, rec
}

func writeEnvelope(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func bearer(r *http.Request) string {
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}

func TestSendAttachesBearerToken(t *testing.T) {
	var gotAuth, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		writeEnvelope(w, http.StatusOK, map[string]string{"ok": "yes"})
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL, &memoryCredentials{access: "tok", refresh: "ref"})

	resp, err := client.Get(context.Background(), "/insights/today/", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "/api/insights/today/", gotPath)

	data, err := Decode[map[string]string](resp)
	require.NoError(t, err)
	assert.Equal(t, "yes", data["ok"])
}

func TestSendOmitsAuthorizationWithoutToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(w, http.StatusOK, nil)
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL, &memoryCredentials{})

	_, err := client.Post(context.Background(), "/auth/login/", map[string]string{"email": "a@b.c"})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestConcurrentUnauthorizedSharesOneRefresh(t *testing.T) {
	const callers = 5
	var refreshCalls, rejected atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/token/refresh/" {
			refreshCalls.Add(1)
			deadline := time.Now().Add(2 * time.Second)
			for rejected.Load() < callers && time.Now().Before(deadline) {
				time.Sleep(5 * time.Millisecond)
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"access": "new", "refresh": "ref2"})
			return
		}
		if bearer(r) != "new" {
			rejected.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeEnvelope(w, http.StatusOK, map[string]string{"path": r.URL.Path})
	}))
	defer server.Close()

	creds := &memoryCredentials{access: "old", refresh: "ref"}
	client, rec := newTestClient(t, server.URL, creds)

	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = client.Get(context.Background(), "/insights/today/", nil)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(1), refreshCalls.Load())
	access, refresh, _ := creds.snapshot()
	assert.Equal(t, "new", access)
	assert.Equal(t, "ref2", refresh)
	assert.Empty(t, rec.types())
	assert.False(t, client.refresh.inFlight())
	assert.Zero(t, client.refresh.queued())
}

func TestRefreshFailureClearsCredentialsAndFailsEveryWaiter(t *testing.T) {
	const callers = 3
	var refreshCalls, rejected atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/token/refresh/" {
			refreshCalls.Add(1)
			deadline := time.Now().Add(2 * time.Second)
			for rejected.Load() < callers && time.Now().Before(deadline) {
				time.Sleep(5 * time.Millisecond)
			}
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Token is invalid or expired"}`))
			return
		}
		rejected.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	creds := &memoryCredentials{access: "old", refresh: "ref"}
	client, rec := newTestClient(t, server.URL, creds)

	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = client.Get(context.Background(), "/dashboard/", nil)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSessionExpired)
	}
	assert.Equal(t, int32(1), refreshCalls.Load())

	access, refresh, clears := creds.snapshot()
	assert.Empty(t, access)
	assert.Empty(t, refresh)
	assert.Equal(t, 1, clears)
	assert.Equal(t, []EventType{EventSessionExpired}, rec.types())
	assert.False(t, client.refresh.inFlight())
}

func TestUnauthorizedAfterFailedRefreshReusesFailure(t *testing.T) {
	var refreshCalls atomic.Int32
	lateArrived := make(chan struct{})
	releaseLate := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/token/refresh/":
			refreshCalls.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Token is invalid or expired"}`))
		case "/api/insights/today/":
			close(lateArrived)
			<-releaseLate
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer server.Close()

	creds := &memoryCredentials{access: "old", refresh: "ref"}
	client, rec := newTestClient(t, server.URL, creds)

	lateErr := make(chan error, 1)
	go func() {
		_, err := client.Get(context.Background(), "/insights/today/", nil)
		lateErr <- err
	}()
	<-lateArrived

	_, err := client.Get(context.Background(), "/dashboard/", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionExpired)

	close(releaseLate)
	late := <-lateErr
	require.Error(t, late)
	assert.ErrorIs(t, late, ErrSessionExpired)
	assert.NotErrorIs(t, late, ErrNoRefreshToken)
	assert.Equal(t, err.Error(), late.Error())

	assert.Equal(t, int32(1), refreshCalls.Load())
	_, _, clears := creds.snapshot()
	assert.Equal(t, 1, clears)
	assert.Equal(t, []EventType{EventSessionExpired}, rec.types())
}

func TestMissingRefreshTokenSkipsRefresh(t *testing.T) {
	var refreshCalls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/token/refresh/" {
			refreshCalls.Add(1)
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	creds := &memoryCredentials{access: "old"}
	client, rec := newTestClient(t, server.URL, creds)

	_, err := client.Get(context.Background(), "/auth/user/", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.ErrorIs(t, err, ErrNoRefreshToken)
	assert.Equal(t, http.StatusUnauthorized, StatusCode(err))
	assert.Zero(t, refreshCalls.Load())
	_, _, clears := creds.snapshot()
	assert.Equal(t, 1, clears)
	assert.Equal(t, []EventType{EventSessionExpired}, rec.types())
	assert.False(t, client.refresh.inFlight())
}

func TestReplayedRequestIsNotRefreshedAgain(t *testing.T) {
	var refreshCalls, protectedCalls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/token/refresh/" {
			refreshCalls.Add(1)
			_ = json.NewEncoder(w).Encode(map[string]string{"access": "new"})
			return
		}
		protectedCalls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	creds := &memoryCredentials{access: "old", refresh: "ref"}
	client, rec := newTestClient(t, server.URL, creds)

	_, err := client.Get(context.Background(), "/insights/", nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, StatusCode(err))
	assert.NotErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, int32(1), refreshCalls.Load())
	assert.Equal(t, int32(2), protectedCalls.Load())
	assert.Empty(t, rec.types())
}

func TestRefreshKeepsRefreshTokenWhenNotRotated(t *testing.T) {
	var gotRefresh string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/token/refresh/" {
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			gotRefresh = body["refresh"]
			_ = json.NewEncoder(w).Encode(map[string]string{"access": "new"})
			return
		}
		if bearer(r) != "new" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeEnvelope(w, http.StatusOK, nil)
	}))
	defer server.Close()

	creds := &memoryCredentials{access: "old", refresh: "keep-me"}
	client, _ := newTestClient(t, server.URL, creds)

	_, err := client.Get(context.Background(), "/insights/", nil)
	require.NoError(t, err)
	assert.Equal(t, "keep-me", gotRefresh)
	access, refresh, _ := creds.snapshot()
	assert.Equal(t, "new", access)
	assert.Equal(t, "keep-me", refresh)
}

func TestLateUnauthorizedReplaysWithStoredToken(t *testing.T) {
	var refreshCalls atomic.Int32
	creds := &memoryCredentials{access: "old", refresh: "ref"}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/token/refresh/" {
			refreshCalls.Add(1)
			_ = json.NewEncoder(w).Encode(map[string]string{"access": "other"})
			return
		}
		if bearer(r) == "old" {
			// another caller already rotated the pair
			_ = creds.SetTokens(context.Background(), "fresh", "ref")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeEnvelope(w, http.StatusOK, map[string]string{"token": bearer(r)})
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL, creds)

	resp, err := client.Get(context.Background(), "/insights/", nil)
	require.NoError(t, err)
	data, err := Decode[map[string]string](resp)
	require.NoError(t, err)
	assert.Equal(t, "fresh", data["token"])
	assert.Zero(t, refreshCalls.Load())
}

func TestNotices(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   []EventType
	}{
		{name: "internal error", status: http.StatusInternalServerError, want: []EventType{NoticeServerError}},
		{name: "bad gateway", status: http.StatusBadGateway, want: []EventType{NoticeServerError}},
		{name: "forbidden", status: http.StatusForbidden, want: []EventType{NoticePermissionDenied}},
		{name: "rate limited", status: http.StatusTooManyRequests, want: []EventType{NoticeRateLimited}},
		{name: "not found", status: http.StatusNotFound, want: []EventType{}},
		{name: "bad request", status: http.StatusBadRequest, want: []EventType{}},
		{name: "conflict", status: http.StatusConflict, want: []EventType{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client, rec := newTestClient(t, server.URL, &memoryCredentials{access: "tok", refresh: "ref"})

			_, err := client.Get(context.Background(), "/insights/", nil)
			require.Error(t, err)
			assert.Equal(t, tt.status, StatusCode(err))
			assert.Equal(t, tt.want, rec.types())
		})
	}
}

func TestNetworkFailureNotice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client, rec := newTestClient(t, serverURL, &memoryCredentials{access: "tok"})

	_, err := client.Get(context.Background(), "/insights/", nil)
	require.Error(t, err)
	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
	assert.Zero(t, StatusCode(err))
	assert.Equal(t, []EventType{NoticeNetworkError}, rec.types())
}

func TestTimeoutYieldsOneNetworkNotice(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client, err := NewClient(Options{BaseURL: server.URL, Credentials: &memoryCredentials{access: "tok"}, Timeout: 50 * time.Millisecond})
	require.NoError(t, err)
	rec := &recorder{}
	client.Subscribe(rec.handle)

	_, err = client.Get(context.Background(), "/insights/today/", nil)
	require.Error(t, err)
	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
	assert.Zero(t, StatusCode(err))
	assert.Equal(t, []EventType{NoticeNetworkError}, rec.types())
}

func TestCanceledContextIsNotNoticed(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client, rec := newTestClient(t, server.URL, &memoryCredentials{access: "tok"})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := client.Get(ctx, "/insights/", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rec.types())
}

func TestOpenBreakerReportsNetworkError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, err := NewClient(Options{BaseURL: server.URL, Credentials: &memoryCredentials{access: "tok"}, Breaker: true})
	require.NoError(t, err)
	rec := &recorder{}
	client.Subscribe(rec.handle)

	for i := 0; i < 5; i++ {
		_, err := client.Get(context.Background(), "/dashboard/", nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, StatusCode(err))
	}

	_, err = client.Get(context.Background(), "/dashboard/", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gobreaker.ErrOpenState))
	assert.Equal(t, int32(5), calls.Load())

	types := rec.types()
	require.Len(t, types, 6)
	assert.Equal(t, NoticeNetworkError, types[5])
}

func TestRateLimitPacesRequests(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeEnvelope(w, http.StatusOK, map[string]any{})
	}))
	defer server.Close()

	client, err := NewClient(Options{BaseURL: server.URL, Credentials: &memoryCredentials{access: "tok"}, RateLimit: 1})
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "/dashboard/", nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = client.Get(ctx, "/dashboard/", nil)
	require.Error(t, err)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, int32(1), calls.Load())
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewClient(Options{BaseURL: server.URL, Credentials: &memoryCredentials{}})
	require.NoError(t, err)

	rec := &recorder{}
	unsubscribe := client.Subscribe(rec.handle)
	unsubscribe()
	unsubscribe()

	_, _ = client.Get(context.Background(), "/", nil)
	assert.Empty(t, rec.types())
}

func TestStatusErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/enveloped":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"success":false,"error":{"message":"Invalid credentials","detail":{"email":["bad"]}}}`))
		case "/detail":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"Not found."}`))
		default:
			w.WriteHeader(http.StatusTeapot)
		}
	}))
	defer server.Close()

	client, err := NewClient(Options{BaseURL: server.URL, Credentials: &memoryCredentials{}})
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "/enveloped", nil)
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.JSONEq(t, `{"email":["bad"]}`, string(statusErr.Detail))

	_, err = client.Get(context.Background(), "/detail", nil)
	require.Error(t, err)
	assert.Equal(t, "Not found.", err.Error())
	assert.True(t, IsNotFound(err))

	_, err = client.Get(context.Background(), "/plain", nil)
	require.Error(t, err)
	assert.Equal(t, "GET /plain: status 418", err.Error())
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient(Options{Credentials: &memoryCredentials{}})
	assert.Error(t, err)

	_, err = NewClient(Options{BaseURL: "http://localhost"})
	assert.Error(t, err)

	client, err := NewClient(Options{BaseURL: "http://localhost:8000/api/", Credentials: &memoryCredentials{}})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/api", client.BaseURL())
	assert.Equal(t, DefaultTimeout, client.http.Timeout)
}
