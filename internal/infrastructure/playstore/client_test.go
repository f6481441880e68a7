package playstore

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"FintechReviews/internal/domain"
	"FintechReviews/internal/feed"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/store/apps/details", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><h1 itemprop="name">Dashen SuperApp</h1></body></html>`))
	})
	mux.HandleFunc("/apps/com.dashen.dashensuperapp/reviews", func(w http.ResponseWriter, r *http.Request) {
		page := map[string]any{
			"reviews": []map[string]any{
				{"text": "Great app", "score": 5, "at": "2024-01-15T10:00:00Z"},
				{"text": "Crashes on login", "score": 1, "at": "2024-01-14T09:00:00Z"},
			},
		}
		if r.URL.Query().Get("token") == "" {
			page["nextToken"] = "page2"
		} else {
			page["reviews"] = []map[string]any{
				{"text": "Transfers are slow", "score": 2, "at": "2024-01-13T08:00:00Z"},
			}
		}
		_ = json.NewEncoder(w).Encode(page)
	})
	return httptest.NewServer(mux)
}

func TestFetchFollowsPagination(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	defer server.Close()

	client := NewClient(server.URL, server.URL, server.Client(), nil)
	client.pageSize = 2

	rows, err := client.Fetch(context.Background(), feed.Request{
		AppID:    "com.dashen.dashensuperapp",
		Bank:     "Dashen Bank",
		Language: "en",
		Country:  "us",
		Count:    3,
	})
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected 3 reviews, got %d", len(rows))
	}
	if rows[0].Text != "Great app" || rows[0].Rating != 5 {
		t.Fatalf("unexpected first review: %+v", rows[0])
	}
	if rows[0].Date != "2024-01-15" {
		t.Fatalf("unexpected date: %q", rows[0].Date)
	}
	if rows[2].Text != "Transfers are slow" {
		t.Fatalf("pagination did not reach second page: %+v", rows[2])
	}
	for _, row := range rows {
		if row.Bank != "Dashen Bank" || row.Source != "Google Play" {
			t.Fatalf("bank/source tags missing: %+v", row)
		}
	}
}

func TestFetchStopsAtRequestedCount(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	defer server.Close()

	client := NewClient(server.URL, server.URL, server.Client(), nil)

	rows, err := client.Fetch(context.Background(), feed.Request{
		AppID:    "com.dashen.dashensuperapp",
		Bank:     "Dashen Bank",
		Language: "en",
		Country:  "us",
		Count:    1,
	})
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected exactly 1 review, got %d", len(rows))
	}
}

func TestFetchWrapsFeedFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.URL, server.Client(), nil)

	_, err := client.Fetch(context.Background(), feed.Request{
		AppID: "com.any", Bank: "BankA", Language: "en", Country: "us", Count: 1,
	})
	if !errors.Is(err, domain.ErrFeed) {
		t.Fatalf("expected ErrFeed, got %v", err)
	}
}

func TestAppTitle(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	defer server.Close()

	client := NewClient(server.URL, server.URL, server.Client(), nil)

	title, err := client.appTitle(context.Background(), "com.dashen.dashensuperapp")
	if err != nil {
		t.Fatalf("appTitle returned error: %v", err)
	}
	if title != "Dashen SuperApp" {
		t.Fatalf("unexpected title: %q", title)
	}
}
