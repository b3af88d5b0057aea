package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "11999999999", want: "5511999999999"},
		{in: "5511999999999", want: "5511999999999"},
		{in: "(11) 99999-9999", want: "5511999999999"},
		{in: "", want: PlaceholderPhone},
		{in: "   ", want: PlaceholderPhone},
		{in: "123", want: "55123"},
	}

	for _, tc := range cases {
		if got := NormalizePhone(tc.in); got != tc.want {
			t.Fatalf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestWhatsAppNotifier_Notify(t *testing.T) {
	t.Run("dispatches normalized number", func(t *testing.T) {
		var gotBody []byte
		var gotAuth, gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotBody, _ = io.ReadAll(r.Body)
			gotAuth = r.Header.Get("Authorization")
			gotPath = r.URL.Path
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		n := NewWhatsAppNotifier(srv.URL, "tok-1", "phone-1", srv.Client())
		n.Notify(context.Background(), "11999999999", "Pagamento confirmado!")

		if gotAuth != "Bearer tok-1" {
			t.Fatalf("unexpected auth header: %q", gotAuth)
		}
		if gotPath != "/phone-1/messages" {
			t.Fatalf("unexpected path: %q", gotPath)
		}
		var msg map[string]any
		if err := json.Unmarshal(gotBody, &msg); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if msg["to"] != "5511999999999" {
			t.Fatalf("expected normalized destination, got %v", msg["to"])
		}
		if msg["messaging_product"] != "whatsapp" || msg["type"] != "text" {
			t.Fatalf("unexpected message envelope: %s", gotBody)
		}
		if text, _ := msg["text"].(map[string]any); text["body"] != "Pagamento confirmado!" {
			t.Fatalf("unexpected text body: %s", gotBody)
		}
	})

	t.Run("missing phone falls back to placeholder and still dispatches", func(t *testing.T) {
		var calls atomic.Int32
		var gotBody []byte
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			gotBody, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		n := NewWhatsAppNotifier(srv.URL, "tok-1", "phone-1", srv.Client())
		n.Notify(context.Background(), "", "oi")

		if calls.Load() != 1 {
			t.Fatalf("expected 1 dispatch, got %d", calls.Load())
		}
		if !strings.Contains(string(gotBody), PlaceholderPhone) {
			t.Fatalf("expected placeholder destination, got %s", gotBody)
		}
	})

	t.Run("too-short number aborts before transport", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		n := NewWhatsAppNotifier(srv.URL, "tok-1", "phone-1", srv.Client())
		n.Notify(context.Background(), "123", "oi")

		if calls.Load() != 0 {
			t.Fatalf("expected no dispatch, got %d", calls.Load())
		}
	})

	t.Run("provider rejection is swallowed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		n := NewWhatsAppNotifier(srv.URL, "bad-token", "phone-1", srv.Client())
		n.Notify(context.Background(), "11999999999", "oi")
	})

	t.Run("transport failure is swallowed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close() // connection refused from here on

		n := NewWhatsAppNotifier(srv.URL, "tok-1", "phone-1", nil)
		n.Notify(context.Background(), "11999999999", "oi")
	})
}
