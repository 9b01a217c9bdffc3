package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestChatDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req["session_id"] != "sess-1" || req["message"] != "hello" {
			t.Errorf("unexpected request payload %v", req)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"response":  "hi there",
			"citations": []interface{}{"plain string citation"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", nil)
	result, err := client.Chat(context.Background(), "sess-1", "hello")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if result.Response != "hi there" {
		t.Errorf("got response %q", result.Response)
	}
	if len(result.Citations) != 1 {
		t.Errorf("got %d citations, want 1", len(result.Citations))
	}
}

func TestChatUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", nil)
	if _, err := client.Chat(context.Background(), "sess-1", "hello"); err == nil {
		t.Fatal("expected error on 500 response")
	}
}

func TestGetSessionNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", nil)
	_, err := client.GetSession(context.Background(), "nope")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("got %v, want ErrSessionNotFound", err)
	}
}

func TestGetSessionBoundedDeadline(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	client := NewClient(srv.URL, "", nil)
	if client.sessionTimeout != defaultSessionTimeout {
		t.Fatalf("got session timeout %v, want %v", client.sessionTimeout, defaultSessionTimeout)
	}
	client.sessionTimeout = 50 * time.Millisecond

	start := time.Now()
	_, err := client.GetSession(context.Background(), "slow")
	if err == nil {
		t.Fatal("expected deadline error from stalled upstream")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("GetSession blocked for %v, deadline not applied", elapsed)
	}
}

func TestGetSessionDecodesState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/sessions/sess-9" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		name := "Ada"
		json.NewEncoder(w).Encode(SessionState{
			SessionID:      "sess-9",
			Phase:          "welcome_data_collection",
			CompletionRate: 0.25,
			UserName:       &name,
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", nil)
	state, err := client.GetSession(context.Background(), "sess-9")
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if state.SessionID != "sess-9" || state.CompletionRate != 0.25 {
		t.Errorf("unexpected state %+v", state)
	}
	if state.UserName == nil || *state.UserName != "Ada" {
		t.Errorf("user_name not decoded")
	}
	if state.UserEmail != nil {
		t.Errorf("absent field should stay nil")
	}
}
