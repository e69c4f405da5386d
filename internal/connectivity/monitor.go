// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package connectivity tracks whether the remote authority is reachable. The
// orchestrator treats the monitor as read-only: it subscribes, reads the
// current state, and skips sync cycles while offline.
package connectivity

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pack-sync/internal/logger"
)

//go:generate mockgen -source=monitor.go -destination=../mock/connectivity_mock.go -package=mock

// State is the connectivity snapshot handed to subscribers.
type State struct {
	// IsOnline reports basic network reachability.
	IsOnline bool
	// IsConnected reports that the remote authority answered the last
	// probe. Connected implies online.
	IsConnected bool
}

// Monitor is the subscribable online/offline signal.
type Monitor interface {
	// State returns the current connectivity snapshot.
	State() State

	// Subscribe registers cb and synchronously invokes it with the
	// current state. The returned function unsubscribes.
	Subscribe(cb func(State)) func()
}

// Pinger is the probe target; satisfied by the remote adapter.
type Pinger interface {
	Ping(ctx context.Context) error
}

type probeMonitor struct {
	pinger   Pinger
	interval time.Duration
	logger   *logger.Logger

	mu        sync.Mutex
	state     State
	listeners map[int]func(State)
	nextID    int
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// NewProbeMonitor returns a Monitor that derives connectivity from periodic
// pings of the remote authority. It is idle until Start is called.
func NewProbeMonitor(pinger Pinger, interval time.Duration, log *logger.Logger) *probeMonitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	return &probeMonitor{
		pinger:    pinger,
		interval:  interval,
		logger:    log,
		listeners: make(map[int]func(State)),
	}
}

// Start probes once immediately, then on a ticker until ctx is cancelled or
// Stop is called.
func (m *probeMonitor) Start(ctx context.Context) {
	m.Stop()

	m.mu.Lock()
	probeCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()

		m.probe(probeCtx)

		t := time.NewTicker(m.interval)
		defer t.Stop()

		for {
			select {
			case <-probeCtx.Done():
				return
			case <-t.C:
				m.probe(probeCtx)
			}
		}
	}()
}

// Stop cancels the probe goroutine and blocks until it has exited. Safe to
// call when the monitor is not running.
func (m *probeMonitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}

func (m *probeMonitor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *probeMonitor) Subscribe(cb func(State)) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = cb
	state := m.state
	m.mu.Unlock()

	cb(state)

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.listeners, id)
	}
}

func (m *probeMonitor) probe(ctx context.Context) {
	err := m.pinger.Ping(ctx)

	next := State{IsOnline: err == nil, IsConnected: err == nil}
	if err != nil && ctx.Err() == nil {
		m.logger.Debug().Err(err).Msg("connectivity probe failed")
	}

	m.setState(next)
}

func (m *probeMonitor) setState(next State) {
	m.mu.Lock()
	if m.state == next {
		m.mu.Unlock()
		return
	}
	m.state = next

	cbs := make([]func(State), 0, len(m.listeners))
	for _, cb := range m.listeners {
		cbs = append(cbs, cb)
	}
	m.mu.Unlock()

	for _, cb := range cbs {
		cb(next)
	}
}

// ManualMonitor is a Monitor whose state is driven by the caller. Used in
// tests and in environments where the platform supplies its own
// reachability signal.
type ManualMonitor struct {
	mu        sync.Mutex
	state     State
	listeners map[int]func(State)
	nextID    int
}

// NewManualMonitor returns a ManualMonitor starting in the given state.
func NewManualMonitor(initial State) *ManualMonitor {
	return &ManualMonitor{state: initial, listeners: make(map[int]func(State))}
}

// State implements Monitor.
func (m *ManualMonitor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Subscribe implements Monitor.
func (m *ManualMonitor) Subscribe(cb func(State)) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = cb
	state := m.state
	m.mu.Unlock()

	cb(state)

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.listeners, id)
	}
}

// SetState updates the state and notifies listeners on change.
func (m *ManualMonitor) SetState(next State) {
	m.mu.Lock()
	if m.state == next {
		m.mu.Unlock()
		return
	}
	m.state = next

	cbs := make([]func(State), 0, len(m.listeners))
	for _, cb := range m.listeners {
		cbs = append(cbs, cb)
	}
	m.mu.Unlock()

	for _, cb := range cbs {
		cb(next)
	}
}
