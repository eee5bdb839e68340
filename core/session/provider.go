package session

import (
	"context"
	"errors"
	"sync"

	pkgerrors "github.com/pkg/errors"
)

// State of a Provider.
type State int

const (
	StateInitializing State = iota
	StateAuthenticated
	StateUnauthenticated
)

var stateNames = map[State]string{
	StateInitializing:    "initializing",
	StateAuthenticated:   "authenticated",
	StateUnauthenticated: "unauthenticated",
}

func (s State) String() string { return stateNames[s] }

func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *State) UnmarshalText(text []byte) error {
	for state, name := range stateNames {
		if name == string(text) {
			*s = state
			return nil
		}
	}
	return pkgerrors.Errorf("unknown session state %q", text)
}

var (
	ErrNotReady     = errors.New("session is still initializing")
	ErrLoginPending = errors.New("a login is already in progress")
)

// Provider exposes the session to the screens.
// It starts Initializing, moves once to Authenticated or Unauthenticated,
// and never goes back to Initializing.
type Provider struct {
	svc *Service

	initOnce sync.Once
	initErr  error
	ready    chan struct{}

	mu      sync.RWMutex
	state   State
	user    User
	pending bool
}

func NewProvider(svc *Service) *Provider {
	return &Provider{
		svc:   svc,
		ready: make(chan struct{}),
		state: StateInitializing,
	}
}

// Init reads the current session once. Later calls return the first result.
func (p *Provider) Init(ctx context.Context) error {
	p.initOnce.Do(func() {
		defer close(p.ready)

		usr, ok, err := p.svc.CurrentUser(ctx)
		p.mu.Lock()
		defer p.mu.Unlock()
		if err != nil {
			p.initErr = pkgerrors.Wrap(err, "reading current user")
			p.state = StateUnauthenticated
			return
		}
		if ok {
			p.user = usr
			p.state = StateAuthenticated
		} else {
			p.state = StateUnauthenticated
		}
	})
	return p.initErr
}

// Ready is closed once Init has completed.
func (p *Provider) Ready() <-chan struct{} { return p.ready }

func (p *Provider) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// User returns the session user, if authenticated.
func (p *Provider) User() (User, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.state != StateAuthenticated {
		return User{}, false
	}
	return p.user, true
}

// Login resolves credentials; only one login may be pending at a time.
func (p *Provider) Login(ctx context.Context, email, password string) (User, error) {
	p.mu.Lock()
	switch {
	case p.state == StateInitializing:
		p.mu.Unlock()
		return User{}, ErrNotReady
	case p.pending:
		p.mu.Unlock()
		return User{}, ErrLoginPending
	}
	p.pending = true
	p.mu.Unlock()

	usr, err := p.svc.Login(ctx, email, password)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending = false
	if err != nil {
		return User{}, err
	}
	p.user = usr
	p.state = StateAuthenticated
	return usr, nil
}

// Logout ends the session. Logging out while unauthenticated is a no-op on state.
func (p *Provider) Logout(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == StateInitializing {
		return ErrNotReady
	}
	if err := p.svc.Logout(ctx); err != nil {
		return err
	}
	p.user = User{}
	p.state = StateUnauthenticated
	return nil
}
