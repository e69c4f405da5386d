// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sethvargo/go-retry"
)

// HTTPClientConfig configures [NewHTTPRemoteClient].
type HTTPClientConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration

	// MaxRetries bounds the in-call retries of transient failures before
	// the error is returned and the sync cycle aborts. Zero uses the
	// default of 3.
	MaxRetries uint64
}

type httpRemoteClient struct {
	client     *resty.Client
	maxRetries uint64

	mu    sync.RWMutex
	token string
}

// NewHTTPRemoteClient constructs the HTTP/REST [RemoteClient].
func NewHTTPRemoteClient(cfg HTTPClientConfig) RemoteClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	h := &httpRemoteClient{client: cli, maxRetries: cfg.MaxRetries}
	h.SetToken(cfg.Token)
	return h
}

func (h *httpRemoteClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpRemoteClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpRemoteClient) UserID() string {
	token := h.Token()
	if token == "" {
		return ""
	}

	subject, err := parseSubjectFromJWT(token)
	if err != nil {
		return ""
	}
	return subject
}

func (h *httpRemoteClient) InsertRow(ctx context.Context, table string, row map[string]any) error {
	return h.withRetry(ctx, func(ctx context.Context) error {
		resp, err := h.authedRequest(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(row).
			Post("/api/rows/" + table)
		if err != nil {
			return transientErr("insert row request", err)
		}
		return mapHTTPError(resp)
	})
}

func (h *httpRemoteClient) UpdateRow(ctx context.Context, table, id string, row map[string]any) error {
	return h.withRetry(ctx, func(ctx context.Context) error {
		resp, err := h.authedRequest(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(row).
			Put("/api/rows/" + table + "/" + id)
		if err != nil {
			return transientErr("update row request", err)
		}
		return mapHTTPError(resp)
	})
}

func (h *httpRemoteClient) DeleteRow(ctx context.Context, table, id string) error {
	return h.withRetry(ctx, func(ctx context.Context) error {
		resp, err := h.authedRequest(ctx).
			Delete("/api/rows/" + table + "/" + id)
		if err != nil {
			return transientErr("delete row request", err)
		}
		return mapHTTPError(resp)
	})
}

func (h *httpRemoteClient) PullSince(ctx context.Context, table string, since int64) ([]map[string]any, error) {
	var rows []map[string]any

	err := h.withRetry(ctx, func(ctx context.Context) error {
		resp, err := h.authedRequest(ctx).
			SetQueryParam("updated_since", strconv.FormatInt(since, 10)).
			Get("/api/rows/" + table)
		if err != nil {
			return transientErr("pull rows request", err)
		}
		if err = mapHTTPError(resp); err != nil {
			return err
		}

		rows = rows[:0]
		if err = json.Unmarshal(resp.Body(), &rows); err != nil {
			return fmt.Errorf("decode pull response for %s: %w", table, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (h *httpRemoteClient) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Head("/api/health")
	if err != nil {
		return transientErr("ping request", err)
	}
	return mapHTTPError(resp)
}

// withRetry retries fn on [ErrUnavailable] with fibonacci backoff; all other
// errors (rejections, conflicts, auth) return immediately.
func (h *httpRemoteClient) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(h.maxRetries, retry.NewFibonacci(300*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if errors.Is(err, ErrUnavailable) {
			return retry.RetryableError(err)
		}
		return err
	})
}

func (h *httpRemoteClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func transientErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	bodyLower := strings.ToLower(body)
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch {
	case resp.StatusCode() == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case resp.StatusCode() == http.StatusConflict,
		strings.Contains(bodyLower, "duplicate key"),
		strings.Contains(bodyLower, "unique constraint"):
		return fmt.Errorf("%w: %s", ErrUniqueViolation, body)
	case resp.StatusCode() == http.StatusBadRequest,
		resp.StatusCode() == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrValidation, body)
	case resp.StatusCode() == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrUnavailable, resp.StatusCode(), body)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

func parseSubjectFromJWT(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	return claims.GetSubject()
}
