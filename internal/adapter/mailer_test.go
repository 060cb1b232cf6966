package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-influo/internal/config"
	"github.com/MKhiriev/go-influo/internal/logger"
)

func newTestMailer(t *testing.T, otpTTL time.Duration, handler http.HandlerFunc) (Mailer, *httptest.Server) {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	mailer, err := NewHTTPMailer(config.Mailer{
		BaseURL:   srv.URL,
		APIToken:  "test-token",
		FromEmail: "noreply@influo.example",
		Timeout:   2 * time.Second,
	}, otpTTL, logger.NewLogger("test"))
	if err != nil {
		t.Fatalf("NewHTTPMailer error: %v", err)
	}
	return mailer, srv
}

func TestSendOTP_Success(t *testing.T) {
	var got mailMessage
	var gotAuth string

	mailer, _ := newTestMailer(t, 10*time.Minute, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("invalid request body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	})

	err := mailer.SendOTP(context.Background(), "john@example.com", "482913")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer test-token" {
		t.Errorf("expected bearer auth, got %q", gotAuth)
	}
	if got.To != "john@example.com" {
		t.Errorf("expected recipient john@example.com, got %s", got.To)
	}
	if got.From != "noreply@influo.example" {
		t.Errorf("expected configured sender, got %s", got.From)
	}
}

func TestSendOTP_MessageQuotesConfiguredTTL(t *testing.T) {
	var got mailMessage

	mailer, _ := newTestMailer(t, 5*time.Minute, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("invalid request body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	})

	if err := mailer.SendOTP(context.Background(), "john@example.com", "482913"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(got.Text, "expires in 5 minutes") {
		t.Errorf("message must quote the configured code lifetime, got %q", got.Text)
	}
}

func TestSendOTP_ZeroTTLFallsBack(t *testing.T) {
	var got mailMessage

	mailer, _ := newTestMailer(t, 0, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("invalid request body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	})

	if err := mailer.SendOTP(context.Background(), "john@example.com", "482913"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(got.Text, "expires in 10 minutes") {
		t.Errorf("zero ttl must fall back to the default lifetime, got %q", got.Text)
	}
}

func TestSendOTP_Rejected(t *testing.T) {
	mailer, _ := newTestMailer(t, 10*time.Minute, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	})

	err := mailer.SendOTP(context.Background(), "bad-address", "482913")
	if !errors.Is(err, ErrMailRejected) {
		t.Fatalf("expected ErrMailRejected, got %v", err)
	}
}

func TestSendOTP_ProviderDown(t *testing.T) {
	mailer, _ := newTestMailer(t, 10*time.Minute, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	err := mailer.SendOTP(context.Background(), "john@example.com", "482913")
	if !errors.Is(err, ErrMailerUnavailable) {
		t.Fatalf("expected ErrMailerUnavailable, got %v", err)
	}
}

func TestNewHTTPMailer_InvalidBaseURL(t *testing.T) {
	_, err := NewHTTPMailer(config.Mailer{BaseURL: "  "}, 10*time.Minute, logger.NewLogger("test"))
	if err == nil {
		t.Fatal("expected error for empty base url")
	}
}
