package browser

import (
	"context"
	"sync"

	"github.com/viant/afs"
)

// Status describes the session lifecycle. Transitions are monotonic except
// Closed, which permits a relaunch back through Launching.
type Status string

const (
	StatusUninitialized Status = "Uninitialized"
	StatusLaunching     Status = "Launching"
	StatusReady         Status = "Ready"
	StatusClosed        Status = "Closed"
)

// Manager owns the single browser session of the server process. It is the
// sole mutator of session state: every action, launch and close is
// serialized by one mutex, so concurrent callers queue rather than
// interleave and at most one launch is ever in flight.
type Manager struct {
	mu       sync.Mutex
	config   *Config
	launcher Launcher
	fs       afs.Service

	driver Driver
	page   Page
	status Status
}

// Option customizes a Manager.
type Option func(m *Manager)

// WithLauncher overrides the browser launcher.
func WithLauncher(launcher Launcher) Option {
	return func(m *Manager) {
		m.launcher = launcher
	}
}

// NewManager creates a session manager; the browser is launched lazily on
// the first action.
func NewManager(config *Config, options ...Option) *Manager {
	if config == nil {
		config = NewConfig()
	}
	config.Init()
	ret := &Manager{
		config:   config,
		launcher: ChromiumLauncher,
		fs:       afs.New(),
		status:   StatusUninitialized,
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Status reports the current session state.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// EnsureReady launches the browser if needed. It is idempotent: a Ready
// session returns immediately, callers arriving during a launch block until
// the in-flight launch resolves, and a failed launch reverts the session to
// Uninitialized.
func (m *Manager) EnsureReady(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ensureReady(ctx)
}

// ensureReady requires m.mu to be held.
func (m *Manager) ensureReady(ctx context.Context) error {
	if m.status == StatusReady {
		return nil
	}
	m.status = StatusLaunching
	driver, err := m.launcher(ctx, m.config)
	if err != nil {
		m.status = StatusUninitialized
		return NewError(KindLaunchError, "failed to launch browser", err)
	}
	page, err := driver.NewPage()
	if err != nil {
		_ = driver.Close()
		m.status = StatusUninitialized
		return NewError(KindLaunchError, "failed to open page", err)
	}
	m.driver = driver
	m.page = page
	m.status = StatusReady
	return nil
}

// Close tears down the page and browser handle. Closed is not terminal for
// the process: a subsequent action relaunches transparently.
func (m *Manager) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.status != StatusReady {
		m.status = StatusClosed
		return nil
	}
	if m.page != nil {
		_ = m.page.Close()
	}
	err := m.driver.Close()
	m.driver = nil
	m.page = nil
	m.status = StatusClosed
	if err != nil {
		return NewError(KindInternalError, "failed to close browser", err)
	}
	return nil
}

// actionTimeout resolves a caller-supplied timeout against the configured
// default.
func (m *Manager) actionTimeout(requested float64) float64 {
	if requested > 0 {
		return requested
	}
	return m.config.ActionTimeoutMs
}

func (m *Manager) navigationTimeout(requested float64) float64 {
	if requested > 0 {
		return requested
	}
	return m.config.NavigationTimeoutMs
}
