package connectivity

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pack-sync/internal/logger"
)

type fakePinger struct {
	mu  sync.Mutex
	err error
}

func (f *fakePinger) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *fakePinger) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func TestProbeMonitor_InitialProbeSetsState(t *testing.T) {
	p := &fakePinger{}
	m := NewProbeMonitor(p, time.Hour, logger.Nop())

	m.Start(context.Background())
	defer m.Stop()

	require.Eventually(t, func() bool {
		return m.State().IsConnected
	}, time.Second, 5*time.Millisecond)
}

func TestProbeMonitor_NotifiesOnTransition(t *testing.T) {
	p := &fakePinger{err: errors.New("down")}
	m := NewProbeMonitor(p, 10*time.Millisecond, logger.Nop())

	states := make(chan State, 16)
	unsubscribe := m.Subscribe(func(s State) { states <- s })
	defer unsubscribe()

	// немедленное уведомление при подписке
	first := <-states
	assert.False(t, first.IsOnline)

	m.Start(context.Background())
	defer m.Stop()

	p.setErr(nil)

	require.Eventually(t, func() bool {
		select {
		case s := <-states:
			return s.IsConnected
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}

func TestProbeMonitor_StopIsIdempotent(t *testing.T) {
	m := NewProbeMonitor(&fakePinger{}, time.Hour, logger.Nop())

	m.Start(context.Background())
	m.Stop()
	m.Stop()
}

func TestManualMonitor_SubscribeNotifiesImmediately(t *testing.T) {
	m := NewManualMonitor(State{IsOnline: true, IsConnected: true})

	var got State
	unsubscribe := m.Subscribe(func(s State) { got = s })
	defer unsubscribe()

	assert.True(t, got.IsConnected)
}

func TestManualMonitor_UnsubscribeStopsNotifications(t *testing.T) {
	m := NewManualMonitor(State{})

	calls := 0
	unsubscribe := m.Subscribe(func(State) { calls++ })
	require.Equal(t, 1, calls)

	unsubscribe()
	m.SetState(State{IsOnline: true})

	assert.Equal(t, 1, calls)
}

func TestManualMonitor_NoNotifyWithoutChange(t *testing.T) {
	m := NewManualMonitor(State{IsOnline: true, IsConnected: true})

	calls := 0
	defer m.Subscribe(func(State) { calls++ })()

	m.SetState(State{IsOnline: true, IsConnected: true})

	assert.Equal(t, 1, calls)
}
