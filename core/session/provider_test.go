package session_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/educonnect/core/session"
	"github.com/trezcool/educonnect/storage/sessionstore"
	"github.com/trezcool/educonnect/tests"
)

func TestProvider_Init(t *testing.T) {
	ctx := context.Background()

	t.Run("no stored session", func(t *testing.T) {
		svc, _ := newService(t, sessionstore.NewMemoryStore())
		p := session.NewProvider(svc)
		assert.Equal(t, session.StateInitializing, p.State())

		require.NoError(t, p.Init(ctx))
		assert.Equal(t, session.StateUnauthenticated, p.State())
		_, ok := p.User()
		assert.False(t, ok)

		select {
		case <-p.Ready():
		default:
			t.Error("Ready() should be closed after Init()")
		}
	})

	t.Run("stored session", func(t *testing.T) {
		store := sessionstore.NewMemoryStore()
		svc, _ := newService(t, store)
		usr := testutil.Login(t, svc, "teacher@school.edu")

		reloaded, _ := newService(t, store)
		p := session.NewProvider(reloaded)
		require.NoError(t, p.Init(ctx))
		assert.Equal(t, session.StateAuthenticated, p.State())
		got, ok := p.User()
		assert.True(t, ok)
		assert.Equal(t, usr, got)
	})

	t.Run("init runs once", func(t *testing.T) {
		store := sessionstore.NewMemoryStore()
		svc, _ := newService(t, store)
		p := session.NewProvider(svc)
		require.NoError(t, p.Init(ctx))

		// a session appearing later does not re-initialize the provider
		other, _ := newService(t, store)
		testutil.Login(t, other, "admin@school.edu")
		require.NoError(t, p.Init(ctx))
		assert.Equal(t, session.StateUnauthenticated, p.State())
	})
}

func TestProvider_LoginLogout(t *testing.T) {
	ctx := context.Background()
	store := sessionstore.NewMemoryStore()
	svc, _ := newService(t, store)
	p := session.NewProvider(svc)

	_, err := p.Login(ctx, "admin@school.edu", session.DemoPassword)
	assert.Equal(t, session.ErrNotReady, err, "login before init")
	assert.Equal(t, session.ErrNotReady, p.Logout(ctx), "logout before init")

	require.NoError(t, p.Init(ctx))

	_, err = p.Login(ctx, "teacher@school.edu", "wrongpass")
	assert.Equal(t, session.ErrInvalidCredentials, err)
	assert.Equal(t, session.StateUnauthenticated, p.State())

	usr, err := p.Login(ctx, "teacher@school.edu", session.DemoPassword)
	require.NoError(t, err)
	assert.Equal(t, "Michael Chen", usr.Name)
	assert.Equal(t, session.RoleTeacher, usr.Role)
	assert.Equal(t, session.StateAuthenticated, p.State())

	require.NoError(t, p.Logout(ctx))
	assert.Equal(t, session.StateUnauthenticated, p.State())
	assert.Nil(t, store.Raw())

	// idempotent
	require.NoError(t, p.Logout(ctx))
	assert.Equal(t, session.StateUnauthenticated, p.State())
}

func TestProvider_SingleLoginPending(t *testing.T) {
	ctx := context.Background()
	svc := session.NewService(testutil.NewDirectory(t), sessionstore.NewMemoryStore(), 100*time.Millisecond, new(testutil.Logger))
	p := session.NewProvider(svc)
	require.NoError(t, p.Init(ctx))

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = p.Login(ctx, "admin@school.edu", session.DemoPassword)
	}()

	// wait for the first login to be pending
	time.Sleep(20 * time.Millisecond)
	_, err := p.Login(ctx, "parent@school.edu", session.DemoPassword)
	assert.Equal(t, session.ErrLoginPending, err)

	wg.Wait()
	require.NoError(t, firstErr)
	usr, ok := p.User()
	assert.True(t, ok)
	assert.Equal(t, session.RoleAdmin, usr.Role)
}

func TestState_json(t *testing.T) {
	type payload struct {
		State session.State `json:"state"`
	}

	for _, state := range []session.State{session.StateInitializing, session.StateAuthenticated, session.StateUnauthenticated} {
		t.Run(state.String(), func(t *testing.T) {
			data, err := json.Marshal(payload{State: state})
			require.NoError(t, err)
			assert.JSONEq(t, `{"state":"`+state.String()+`"}`, string(data))

			var got payload
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, state, got.State)
		})
	}

	t.Run("unknown state", func(t *testing.T) {
		var got payload
		assert.Error(t, json.Unmarshal([]byte(`{"state":"pending"}`), &got))
	})
}
