package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/trezcool/educonnect/core"
)

var (
	// errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("no session")
	ErrCorruptSession     = errors.New("corrupt session data")
)

type (
	// Store persists the active session across reloads.
	// Load returns ErrNoSession when nothing is stored and ErrCorruptSession when
	// the stored value cannot be decoded into a User.
	Store interface {
		Save(ctx context.Context, usr User) error
		Load(ctx context.Context) (User, error)
		Clear(ctx context.Context) error
	}

	// Authenticator resolves credentials to a User.
	Authenticator interface {
		Authenticate(email, password string) (User, error)
	}

	// Service resolves credentials and keeps the current session in memory,
	// mirrored to a Store.
	Service struct {
		auth   Authenticator
		store  Store
		delay  time.Duration
		logger core.Logger

		mu      sync.Mutex
		current *User
	}
)

func NewService(auth Authenticator, store Store, delay time.Duration, logger core.Logger) *Service {
	return &Service{
		auth:   auth,
		store:  store,
		delay:  delay,
		logger: logger,
	}
}

// Login resolves email & password after the configured delay.
// On failure the session, in memory and persisted, is left untouched.
func (svc *Service) Login(ctx context.Context, email, password string) (User, error) {
	if err := svc.wait(ctx); err != nil {
		return User{}, err
	}

	usr, err := svc.auth.Authenticate(email, password)
	if err != nil {
		return User{}, err
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if err := svc.store.Save(ctx, usr); err != nil {
		return User{}, pkgerrors.Wrap(err, "saving session")
	}
	svc.current = &usr
	return usr, nil
}

func (svc *Service) wait(ctx context.Context) error {
	if svc.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(svc.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Logout clears the in-memory session and deletes the persisted copy.
func (svc *Service) Logout(ctx context.Context) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.current = nil
	return pkgerrors.Wrap(svc.store.Clear(ctx), "clearing session")
}

// CurrentUser returns the in-memory session, falling back to the persisted copy.
// A malformed persisted copy counts as no session and is cleared.
func (svc *Service) CurrentUser(ctx context.Context) (User, bool, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if svc.current != nil {
		return *svc.current, true, nil
	}

	usr, err := svc.store.Load(ctx)
	switch {
	case err == nil && usr.Valid():
		svc.current = &usr
		return usr, true, nil
	case err == nil, pkgerrors.Cause(err) == ErrCorruptSession:
		svc.logger.Warn(fmt.Sprintf("discarding persisted session: %v", orMalformed(err)))
		if err := svc.store.Clear(ctx); err != nil {
			return User{}, false, pkgerrors.Wrap(err, "clearing corrupt session")
		}
		return User{}, false, nil
	case pkgerrors.Cause(err) == ErrNoSession:
		return User{}, false, nil
	default:
		return User{}, false, pkgerrors.Wrap(err, "loading session")
	}
}

func orMalformed(err error) error {
	if err == nil {
		return pkgerrors.Wrap(ErrCorruptSession, "malformed user")
	}
	return err
}

// IsAuthenticated reports whether a session is present.
// Store failures count as unauthenticated.
func (svc *Service) IsAuthenticated(ctx context.Context) bool {
	_, ok, err := svc.CurrentUser(ctx)
	if err != nil {
		svc.logger.Error(fmt.Sprintf("reading session: %v", err), err)
		return false
	}
	return ok
}
