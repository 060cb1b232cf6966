// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-influo/internal/config"
	"github.com/MKhiriev/go-influo/internal/logger"
	"github.com/go-resty/resty/v2"
)

// otpSubject is the subject line of every reset-code message.
const otpSubject = "Your password reset code"

// mailMessage is the provider's message payload.
type mailMessage struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// fallbackOTPTTL covers a zero or negative configured TTL in message text.
const fallbackOTPTTL = 10 * time.Minute

type httpMailer struct {
	client *resty.Client
	from   string
	otpTTL time.Duration

	logger *logger.Logger
}

// NewHTTPMailer constructs an HTTP/REST implementation of [Mailer].
// It normalises and validates the base URL from cfg.BaseURL and configures
// the underlying client with the provider API token and request timeout.
// The otpTTL is the configured code lifetime quoted in message bodies.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPMailer(cfg config.Mailer, otpTTL time.Duration, logger *logger.Logger) (Mailer, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid mailer base url: %w", err)
	}

	if otpTTL <= 0 {
		otpTTL = fallbackOTPTTL
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.APIToken)

	return &httpMailer{client: client, from: cfg.FromEmail, otpTTL: otpTTL, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SendOTP implements [Mailer]. The code appears only in the message body,
// never in logs or error values.
func (m *httpMailer) SendOTP(ctx context.Context, toEmail, code string) error {
	log := logger.FromContext(ctx)

	message := mailMessage{
		From:    m.from,
		To:      toEmail,
		Subject: otpSubject,
		Text:    fmt.Sprintf("Your one-time password reset code is %s. It expires in %d minutes.", code, int(m.otpTTL.Minutes())),
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(message).
		Post("/messages")
	if err != nil {
		log.Err(err).Str("func", "*httpMailer.SendOTP").Msg("mail provider request failed")
		return fmt.Errorf("%w: %w", ErrMailerUnavailable, err)
	}

	return mapProviderError(resp)
}

func mapProviderError(resp *resty.Response) error {
	code := resp.StatusCode()
	switch {
	case code >= http.StatusOK && code < http.StatusMultipleChoices:
		return nil
	case code >= http.StatusBadRequest && code < http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d", ErrMailRejected, code)
	default:
		return fmt.Errorf("%w: http %d", ErrMailerUnavailable, code)
	}
}
