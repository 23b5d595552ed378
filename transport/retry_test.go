package transport

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dans-knaw/go-dataverse/config"
)

func TestIsLockedFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			"dataset locked marker",
			&RequestFailedError{StatusCode: 403, Body: "This dataset is locked. Users can..."},
			true,
		},
		{
			"edit lock marker",
			&RequestFailedError{StatusCode: 500, Body: "ERROR: Dataset cannot be edited due to dataset lock (Ingest)"},
			true,
		},
		{
			"add file marker with 400",
			&RequestFailedError{StatusCode: 400, Body: `{"status":"ERROR","message":"Failed to add file to dataset."}`},
			true,
		},
		{
			"add file marker with other status",
			&RequestFailedError{StatusCode: 500, Body: "Failed to add file to dataset."},
			false,
		},
		{
			"unrelated failure",
			&RequestFailedError{StatusCode: 404, Body: "Not Found"},
			false,
		},
		{
			"case mismatch is not a lock",
			&RequestFailedError{StatusCode: 403, Body: "this dataset is locked"},
			false,
		},
		{
			"conn error never retried",
			&ConnError{Err: errors.New("connection refused")},
			false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := isLockedFailure(tc.err); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

// lockedServer fails the first failCount requests with a locked body, then
// succeeds.
func lockedServer(failCount int32, attempts *atomic.Int32) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := attempts.Add(1)
		if n <= failCount {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("This dataset is locked. Try again later."))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	}))
}

func TestRetrySucceedsAfterLockClears(t *testing.T) {
	var attempts atomic.Int32
	srv := lockedServer(2, &attempts)
	defer srv.Close()

	cfg := config.Default()
	cfg.BaseURL = srv.URL
	cfg.LockedRetryCount = 5
	cfg.LockedRetryInterval = 50 * time.Millisecond
	c := newTestClient(t, cfg)

	start := time.Now()
	resp, err := c.Put(context.Background(), "files/42/restrict", nil)
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if got := attempts.Load(); got != 3 {
		t.Errorf("expected 3 attempts, got %d", got)
	}
	// Two sleeps at the configured fixed interval must have happened.
	if elapsed < 100*time.Millisecond {
		t.Errorf("expected at least 100ms elapsed, got %v", elapsed)
	}
}

func TestRetryExhaustsBudget(t *testing.T) {
	var attempts atomic.Int32
	srv := lockedServer(1000, &attempts)
	defer srv.Close()

	cfg := config.Default()
	cfg.BaseURL = srv.URL
	cfg.LockedRetryCount = 3
	cfg.LockedRetryInterval = time.Millisecond
	c := newTestClient(t, cfg)

	_, err := c.Get(context.Background(), "datasets/42")
	if err == nil {
		t.Fatal("expected error")
	}
	var rf *RequestFailedError
	if !errors.As(err, &rf) {
		t.Fatalf("expected RequestFailedError, got %T: %v", err, err)
	}
	if rf.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rf.StatusCode)
	}
	// Budget of 3 retries means 4 attempts in total.
	if got := attempts.Load(); got != 4 {
		t.Errorf("expected 4 attempts, got %d", got)
	}
}

func TestRetryBudgetZeroSingleAttempt(t *testing.T) {
	var attempts atomic.Int32
	srv := lockedServer(1000, &attempts)
	defer srv.Close()

	cfg := config.Default()
	cfg.BaseURL = srv.URL
	cfg.LockedRetryCount = 0
	cfg.LockedRetryInterval = time.Millisecond
	c := newTestClient(t, cfg)

	if _, err := c.Get(context.Background(), "datasets/42"); err == nil {
		t.Fatal("expected error")
	}
	if got := attempts.Load(); got != 1 {
		t.Errorf("expected exactly 1 attempt, got %d", got)
	}
}

func TestNoRetryOnUnrelatedFailure(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Not Found"))
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.BaseURL = srv.URL
	cfg.LockedRetryCount = 10
	cfg.LockedRetryInterval = time.Millisecond
	c := newTestClient(t, cfg)

	if _, err := c.Get(context.Background(), "datasets/42"); err == nil {
		t.Fatal("expected error")
	}
	if got := attempts.Load(); got != 1 {
		t.Errorf("unrelated failures must not be retried, got %d attempts", got)
	}
}

func TestRetryAddFileLockedVariant(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := attempts.Add(1)
		if n == 1 {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"status":"ERROR","message":"Failed to add file to dataset."}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.BaseURL = srv.URL
	cfg.LockedRetryCount = 2
	cfg.LockedRetryInterval = time.Millisecond
	c := newTestClient(t, cfg)

	resp, err := c.PostMultipart(context.Background(), "datasets/42/add",
		&FileField{FileName: "x.csv", Data: []byte("a,b\n")}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if got := attempts.Load(); got != 2 {
		t.Errorf("expected 2 attempts, got %d", got)
	}
}

func TestRetryReplaysRequestBody(t *testing.T) {
	var attempts atomic.Int32
	var bodies []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := attempts.Add(1)
		data, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(data))
		if n == 1 {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("This dataset is locked"))
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.BaseURL = srv.URL
	cfg.LockedRetryCount = 2
	cfg.LockedRetryInterval = time.Millisecond
	c := newTestClient(t, cfg)

	_, err := c.PostJSON(context.Background(), "datasets/42/actions/:publish",
		map[string]string{"type": "major"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bodies) != 2 || bodies[0] != bodies[1] {
		t.Errorf("retried request must carry the identical body: %q", bodies)
	}
}

func TestRetryHonorsContextCancellation(t *testing.T) {
	var attempts atomic.Int32
	srv := lockedServer(1000, &attempts)
	defer srv.Close()

	cfg := config.Default()
	cfg.BaseURL = srv.URL
	cfg.LockedRetryCount = 100
	cfg.LockedRetryInterval = 50 * time.Millisecond
	c := newTestClient(t, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 75*time.Millisecond)
	defer cancel()

	if _, err := c.Get(ctx, "datasets/42"); err == nil {
		t.Fatal("expected error")
	}
	if got := attempts.Load(); got > 3 {
		t.Errorf("cancellation should stop retrying, got %d attempts", got)
	}
}
