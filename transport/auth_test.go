package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dans-knaw/go-dataverse/config"
)

func TestAuthHeaderDelivery(t *testing.T) {
	var gotHeader string
	var gotBasic bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get(APIKeyHeader)
		_, _, gotBasic = r.BasicAuth()
		w.WriteHeader(200)
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.BaseURL = srv.URL
	cfg.APIKey = "my-token"
	c := newTestClient(t, cfg)

	if _, err := c.Get(context.Background(), "dataverses/root"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotHeader != "my-token" {
		t.Errorf("expected api key header, got %q", gotHeader)
	}
	if gotBasic {
		t.Error("basic auth must not be set in header delivery mode")
	}
}

func TestAuthBasicDelivery(t *testing.T) {
	var gotHeader, gotUser, gotPass string
	var gotBasic bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get(APIKeyHeader)
		gotUser, gotPass, gotBasic = r.BasicAuth()
		w.WriteHeader(200)
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.BaseURL = srv.URL
	cfg.APIKey = "my-token"
	c := newTestClient(t, cfg)

	if _, err := c.Get(context.Background(), "service-document", ViaBasicAuth()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gotBasic {
		t.Fatal("expected basic auth credentials")
	}
	if gotUser != "my-token" || gotPass != "" {
		t.Errorf("expected token as username with empty password, got %q/%q", gotUser, gotPass)
	}
	if gotHeader != "" {
		t.Errorf("api key header must be absent in basic delivery mode, got %q", gotHeader)
	}
}

func TestAuthAnonymous(t *testing.T) {
	var gotHeader string
	var gotBasic bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get(APIKeyHeader)
		_, _, gotBasic = r.BasicAuth()
		w.WriteHeader(200)
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.BaseURL = srv.URL
	c := newTestClient(t, cfg)

	if _, err := c.Get(context.Background(), "dataverses/root"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotHeader != "" || gotBasic {
		t.Error("anonymous access must not attach credentials")
	}
}

func TestAuthUnblockKey(t *testing.T) {
	var gotUnblock string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUnblock = r.URL.Query().Get(UnblockKeyParam)
		w.WriteHeader(200)
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.BaseURL = srv.URL
	cfg.APIKey = "my-token"
	cfg.UnblockKey = "sesame"
	c := newTestClient(t, cfg)

	if _, err := c.Get(context.Background(), "admin/settings", Unversioned(), WithUnblockKey()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotUnblock != "sesame" {
		t.Errorf("expected unblock key query parameter, got %q", gotUnblock)
	}
}

func TestAuthUnblockKeyNotSentWithoutOptIn(t *testing.T) {
	var gotUnblock string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUnblock = r.URL.Query().Get(UnblockKeyParam)
		w.WriteHeader(200)
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.BaseURL = srv.URL
	cfg.UnblockKey = "sesame"
	c := newTestClient(t, cfg)

	if _, err := c.Get(context.Background(), "dataverses/root"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotUnblock != "" {
		t.Errorf("unblock key must only be sent on opted-in requests, got %q", gotUnblock)
	}
}
