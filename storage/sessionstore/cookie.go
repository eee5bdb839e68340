package sessionstore

import (
	"context"
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/educonnect/core/session"
)

var (
	nowFunc = time.Now // mockable

	errUnexpectedSigningMethod = errors.New("unexpected signing method")
)

// cookieClaims is the signed payload carried by the session cookie.
type cookieClaims struct {
	jwt.StandardClaims
	User session.User `json:"user"`
}

// CookieCodec signs session users into cookie values and back.
type CookieCodec struct {
	key    []byte
	issuer string
	name   string
	maxAge time.Duration
	secure bool
}

func NewCookieCodec(secretKey, issuer, name string, maxAge time.Duration, secure bool) *CookieCodec {
	return &CookieCodec{
		key:    []byte(secretKey),
		issuer: issuer,
		name:   name,
		maxAge: maxAge,
		secure: secure,
	}
}

func (c *CookieCodec) Name() string { return c.name }

// Encode returns a HS256-signed token holding usr.
func (c *CookieCodec) Encode(usr session.User) (string, error) {
	claims := cookieClaims{
		StandardClaims: jwt.StandardClaims{
			Id:       uuid.New().String(),
			Issuer:   c.issuer,
			Subject:  usr.ID,
			IssuedAt: nowFunc().Unix(),
		},
		User: usr,
	}
	ss, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
	return ss, errors.Wrap(err, "signing session token")
}

// Decode verifies token and returns its User.
// Tampered or undecodable tokens yield ErrCorruptSession.
func (c *CookieCodec) Decode(token string) (session.User, error) {
	claims := new(cookieClaims)
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errUnexpectedSigningMethod
		}
		return c.key, nil
	})
	if err != nil {
		return session.User{}, errors.Wrap(session.ErrCorruptSession, err.Error())
	}
	return claims.User, nil
}

// Store binds the codec to one request/response pair.
func (c *CookieCodec) Store(w http.ResponseWriter, r *http.Request) *CookieStore {
	return &CookieStore{codec: c, w: w, r: r}
}

func (c *CookieCodec) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     c.name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// CookieStore persists the session in the browser as a signed cookie.
type CookieStore struct {
	codec *CookieCodec
	w     http.ResponseWriter
	r     *http.Request

	// value written during this request, if any; "" after Clear
	written *string
}

var _ session.Store = (*CookieStore)(nil)

func (s *CookieStore) Save(_ context.Context, usr session.User) error {
	token, err := s.codec.Encode(usr)
	if err != nil {
		return err
	}
	http.SetCookie(s.w, s.codec.cookie(token, int(s.codec.maxAge/time.Second)))
	s.written = &token
	return nil
}

func (s *CookieStore) Load(_ context.Context) (session.User, error) {
	var token string
	if s.written != nil {
		token = *s.written
	} else if ck, err := s.r.Cookie(s.codec.name); err == nil {
		token = ck.Value
	}
	if token == "" {
		return session.User{}, session.ErrNoSession
	}
	return s.codec.Decode(token)
}

func (s *CookieStore) Clear(_ context.Context) error {
	http.SetCookie(s.w, s.codec.cookie("", -1))
	cleared := ""
	s.written = &cleared
	return nil
}
