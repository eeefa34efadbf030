// Package connectivity tracks the two signals a sync session depends on:
// whether the device has a network connection, and whether the anonymizing
// proxy is running and how far it has bootstrapped.
package connectivity

import (
	"fmt"
	"sync"
)

// NetworkState reports whether a network connection is available.
type NetworkState int

const (
	NetworkDisconnected NetworkState = iota
	NetworkConnected
)

func (s NetworkState) String() string {
	switch s {
	case NetworkConnected:
		return "CONNECTED"
	default:
		return "DISCONNECTED"
	}
}

// MaxBootstrapProgress is the bootstrap progress of a fully bootstrapped
// proxy.
const MaxBootstrapProgress = 100

// ProxyState describes the anonymizing proxy. BootstrapProgress is only
// meaningful while Running.
type ProxyState struct {
	Running           bool
	BootstrapProgress int
}

// Bootstrapped reports whether the proxy is running and fully bootstrapped.
func (p ProxyState) Bootstrapped() bool {
	return p.Running && p.BootstrapProgress >= MaxBootstrapProgress
}

func (p ProxyState) String() string {
	if !p.Running {
		return "NOT_RUNNING"
	}
	return fmt.Sprintf("RUNNING(%d%%)", p.BootstrapProgress)
}

type (
	// NetworkStateChanged is published when the network state changes.
	NetworkStateChanged struct {
		State NetworkState
	}

	// ProxyStateChanged is published when the proxy state changes.
	ProxyStateChanged struct {
		State ProxyState
	}
)

// Publisher delivers events to subscribers.
type Publisher interface {
	Publish(event any)
}

// Monitor holds the latest value of both signals. Reads always return the
// most recent value, so a late reader never misses the current state even
// though the change events themselves are not retained.
type Monitor struct {
	mu      sync.RWMutex
	network NetworkState
	proxy   ProxyState
	bus     Publisher
}

// NewMonitor creates a monitor that starts disconnected with the proxy not
// running. bus may be nil.
func NewMonitor(bus Publisher) *Monitor {
	return &Monitor{bus: bus}
}

func (m *Monitor) NetworkState() NetworkState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.network
}

func (m *Monitor) ProxyState() ProxyState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.proxy
}

// SetNetworkState stores s and publishes NetworkStateChanged if it differs
// from the previous value.
func (m *Monitor) SetNetworkState(s NetworkState) {
	m.mu.Lock()
	changed := m.network != s
	m.network = s
	m.mu.Unlock()

	if changed && m.bus != nil {
		m.bus.Publish(NetworkStateChanged{State: s})
	}
}

// SetProxyState stores p and publishes ProxyStateChanged if it differs from
// the previous value. Progress is clamped to 0..MaxBootstrapProgress.
func (m *Monitor) SetProxyState(p ProxyState) {
	p.BootstrapProgress = min(max(p.BootstrapProgress, 0), MaxBootstrapProgress)
	if !p.Running {
		p.BootstrapProgress = 0
	}

	m.mu.Lock()
	changed := m.proxy != p
	m.proxy = p
	m.mu.Unlock()

	if changed && m.bus != nil {
		m.bus.Publish(ProxyStateChanged{State: p})
	}
}
