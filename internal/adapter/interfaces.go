// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for reaching the remote
// authority, a row-oriented CRUD API keyed by client-generated ids.
//
// The primary abstraction is [RemoteClient], which decouples the sync
// orchestrator from the protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRemoteClient]) built on resty. Errors defined in
// errors.go are mapped from HTTP status codes by mapHTTPError so callers can
// use [errors.Is] for transport-agnostic handling (e.g. [ErrUniqueViolation]
// for a duplicate-key rejection, [ErrUnavailable] for transient failures).
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_client_mock.go -package=mock

// RemoteClient defines transport-agnostic access to the remote authority's
// entity tables. Rows are generic JSON objects whose "id" field is the
// client-generated identifier; implementations must transmit it verbatim and
// never substitute a server-generated key.
type RemoteClient interface {
	// SetToken stores the bearer token attached to all subsequent
	// requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or
	// an empty string if none has been set.
	Token() string

	// UserID returns the subject claim of the stored token, or an empty
	// string when no token is set or the token carries no subject.
	UserID() string

	// InsertRow creates a row in the named table. The row's "id" field is
	// used as the remote primary key. Returns [ErrUniqueViolation]
	// (wrapped) when the key already exists; the caller decides whether
	// that is a replay or a genuine collision.
	InsertRow(ctx context.Context, table string, row map[string]any) error

	// UpdateRow replaces the row with the given id in the named table.
	UpdateRow(ctx context.Context, table, id string, row map[string]any) error

	// DeleteRow soft-deletes the row with the given id in the named
	// table.
	DeleteRow(ctx context.Context, table, id string) error

	// PullSince returns every row of the named table with
	// updated_at >= since (Unix milliseconds), in the order the remote
	// returns them.
	PullSince(ctx context.Context, table string, since int64) ([]map[string]any, error)

	// Ping performs a cheap reachability check against the API root.
	Ping(ctx context.Context) error
}
