package echoapi

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/educonnect/core"
	"github.com/trezcool/educonnect/core/session"
	"github.com/trezcool/educonnect/storage/sessionstore"
)

var (
	contextProviderKey = "session"
	browserIDCookie    = "educonnect_bid"

	errProviderNotFoundInCtx = errors.New("session provider not found in echo.Context")
	errUnknownSessionBackend = errors.New("unknown session backend")
)

// sessionFactory builds the session Provider of each request over the configured Store backend.
type sessionFactory struct {
	deps   ServerDeps
	cookie *sessionstore.CookieCodec
	memory *sessionstore.MemoryStore
}

func newSessionFactory(deps ServerDeps) *sessionFactory {
	conf := deps.Conf
	return &sessionFactory{
		deps: deps,
		cookie: sessionstore.NewCookieCodec(
			conf.SecretKey, conf.AppName, conf.Session.CookieName, conf.Session.CookieMaxAge, !conf.Debug && !conf.TestMode,
		),
		memory: sessionstore.NewMemoryStore(),
	}
}

func (f *sessionFactory) store(ctx echo.Context) (session.Store, error) {
	switch f.deps.Conf.Session.Backend {
	case core.SessionBackendCookie, "":
		return f.cookie.Store(ctx.Response(), ctx.Request()), nil
	case core.SessionBackendRedis:
		if f.deps.Redis == nil {
			return nil, errors.Wrap(errUnknownSessionBackend, "redis client not configured")
		}
		return sessionstore.NewRedisStore(f.deps.Redis, f.deps.Conf.Session.RedisPrefix, browserID(ctx)), nil
	case core.SessionBackendMemory:
		return f.memory, nil
	}
	return nil, errors.Wrap(errUnknownSessionBackend, f.deps.Conf.Session.Backend)
}

// browserID returns the id identifying the browser's server-side session, issuing one when missing.
func browserID(ctx echo.Context) string {
	if ck, err := ctx.Cookie(browserIDCookie); err == nil && ck.Value != "" {
		return ck.Value
	}
	id := uuid.New().String()
	ctx.SetCookie(&http.Cookie{
		Name:     browserIDCookie,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().Add(365 * 24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// middleware initializes the request's session Provider and stores it in the context.
func (f *sessionFactory) middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		store, err := f.store(ctx)
		if err != nil {
			return errors.Wrap(err, "selecting session store")
		}
		svc := session.NewService(f.deps.Auth, store, f.deps.Conf.Session.LoginDelay, f.deps.Logger)
		p := session.NewProvider(svc)
		if err := p.Init(ctx.Request().Context()); err != nil {
			return errors.Wrap(err, "initializing session")
		}
		ctx.Set(contextProviderKey, p)
		return next(ctx)
	}
}

func contextProvider(ctx echo.Context) (*session.Provider, error) {
	p, ok := ctx.Get(contextProviderKey).(*session.Provider)
	if !ok {
		return nil, errProviderNotFoundInCtx
	}
	return p, nil
}

// contextUser returns the session user, or errUnauthorized.
func contextUser(ctx echo.Context) (session.User, error) {
	p, err := contextProvider(ctx)
	if err != nil {
		return session.User{}, err
	}
	usr, ok := p.User()
	if !ok {
		return session.User{}, errUnauthorized
	}
	return usr, nil
}

// Session API

type SessionResponse struct {
	State session.State `json:"state"`
	User  *session.User `json:"user,omitempty"`
}

type sessionApi struct {
	validate *validator.Validate
}

func registerSessionAPI(g *echo.Group, validate *validator.Validate) {
	api := sessionApi{validate: validate}

	sg := g.Group("/session")
	sg.GET("", api.state)
	sg.POST("/login", api.login)
	sg.POST("/logout", api.logout)
	sg.GET("/navigation", api.navigation)
	sg.GET("/demo-credentials", api.demoCredentials)
}

func (api *sessionApi) login(ctx echo.Context) error {
	p, err := contextProvider(ctx)
	if err != nil {
		return err
	}

	var data session.Credentials
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Credentials")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	usr, err := p.Login(ctx.Request().Context(), data.Email, data.Password)
	if err != nil {
		return errors.Wrap(err, "logging in")
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (api *sessionApi) logout(ctx echo.Context) error {
	p, err := contextProvider(ctx)
	if err != nil {
		return err
	}
	if err := p.Logout(ctx.Request().Context()); err != nil {
		return errors.Wrap(err, "logging out")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *sessionApi) state(ctx echo.Context) error {
	p, err := contextProvider(ctx)
	if err != nil {
		return err
	}
	res := SessionResponse{State: p.State()}
	if usr, ok := p.User(); ok {
		res.User = &usr
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *sessionApi) navigation(ctx echo.Context) error {
	usr, err := contextUser(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, session.Navigation(usr.Role))
}

func (api *sessionApi) demoCredentials(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, session.DemoCredentials())
}
