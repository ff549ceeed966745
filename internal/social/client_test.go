package social

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func testClient(baseURL string) *Client {
	c := NewClient(baseURL, "test-token", slog.New(slog.NewTextHandler(io.Discard, nil)))
	c.retryInterval = time.Millisecond
	c.maxElapsed = 50 * time.Millisecond
	return c
}

func TestFetchPosts_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("expected bearer token, got %q", got)
		}
		if r.URL.Path != "/v1/twitter/users/jane/posts" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("limit") != "50" {
			t.Errorf("unexpected limit: %s", r.URL.Query().Get("limit"))
		}

		json.NewEncoder(w).Encode(map[string]any{
			"handle": "jane",
			"posts": []map[string]any{
				{"text": "morning run done", "likes": 12, "comments": 3, "hashtags": []string{"fitfam"}},
				{"text": "coffee time"},
			},
		})
	}))
	defer srv.Close()

	records, err := testClient(srv.URL).FetchPosts(context.Background(), "twitter", "jane", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Engagement == nil || records[0].Engagement.Likes != 12 {
		t.Errorf("expected engagement on first record, got %+v", records[0].Engagement)
	}
	if records[1].Engagement != nil {
		t.Errorf("expected no engagement without metrics, got %+v", records[1].Engagement)
	}
}

func TestFetchPosts_ErrorCategories(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   Category
	}{
		{"unauthorized", http.StatusUnauthorized, CategoryAuth},
		{"forbidden", http.StatusForbidden, CategoryAuth},
		{"unknown handle", http.StatusNotFound, CategoryNotFound},
		{"rate limited", http.StatusTooManyRequests, CategoryRateLimit},
		{"gateway timeout", http.StatusGatewayTimeout, CategoryTimeout},
		{"teapot", http.StatusTeapot, CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := testClient(srv.URL).FetchPosts(context.Background(), "instagram", "jane", 10)

			var fe *FetchError
			if !errors.As(err, &fe) {
				t.Fatalf("expected FetchError, got %v", err)
			}
			if fe.Category != tt.want {
				t.Errorf("expected category %s, got %s", tt.want, fe.Category)
			}
			if fe.StatusCode != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, fe.StatusCode)
			}
			if fe.Platform != "instagram" {
				t.Errorf("expected platform in error, got %s", fe.Platform)
			}
		})
	}
}

func TestFetchPosts_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"handle": "jane", "posts": []map[string]any{{"text": "back up"}}})
	}))
	defer srv.Close()

	records, err := testClient(srv.URL).FetchPosts(context.Background(), "twitter", "jane", 10)
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected 1 record, got %d", len(records))
	}
	if calls.Load() != 2 {
		t.Errorf("expected 2 calls, got %d", calls.Load())
	}
}

func TestFetchPosts_NoRetryOnAuthFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).FetchPosts(context.Background(), "twitter", "jane", 10)
	if err == nil {
		t.Fatal("expected error")
	}
	if calls.Load() != 1 {
		t.Errorf("expected a single call for a permanent failure, got %d", calls.Load())
	}
}

func TestFetchPosts_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "{not json")
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).FetchPosts(context.Background(), "twitter", "jane", 10)

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if fe.Category != CategoryUnknown {
		t.Errorf("expected unknown category, got %s", fe.Category)
	}
}
