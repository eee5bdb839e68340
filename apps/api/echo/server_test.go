package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/educonnect/core"
	"github.com/trezcool/educonnect/core/school"
	"github.com/trezcool/educonnect/core/session"
	emailsvc "github.com/trezcool/educonnect/services/email"
	inmemdb "github.com/trezcool/educonnect/storage/inmem"
	"github.com/trezcool/educonnect/tests"
)

var (
	errNotAuthenticated = httpErr{Error: "user not authenticated"}
	errPermission       = httpErr{Error: "permission denied"}
	errNotFound         = httpErr{Error: "not found"}
)

type testApp struct {
	*Server
	mailSvc *emailsvc.ConsoleServiceMock
	logger  *testutil.Logger
}

func setup(t *testing.T, backend ...string) *testApp {
	t.Helper()

	conf := core.NewTestConfig()
	if len(backend) > 0 {
		conf.Session.Backend = backend[0]
	}
	logger := new(testutil.Logger)
	mailSvc := emailsvc.NewConsoleServiceMock(conf, logger)
	translator := core.NewTranslator()

	srv := NewServer(ServerDeps{
		Conf:           conf,
		Logger:         logger,
		Auth:           testutil.NewDirectory(t),
		SchoolSvc:      school.NewService(inmemdb.OpenSeeded(), mailSvc, logger),
		Validate:       core.NewValidator(translator),
		Translator:     translator,
		DisableReqLogs: true,
	})
	t.Cleanup(func() { _ = srv.Close() })
	return &testApp{Server: srv, mailSvc: mailSvc, logger: logger}
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	cookies  []*http.Cookie
	wantCode int
	wantData []byte
}

func newSessionRequest(method, path string, cookies []*http.Cookie, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	return req, httptest.NewRecorder()
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newSessionRequest(method, path, nil, data...)
}

func (app *testApp) do(t *testing.T, tt httpTest) *httptest.ResponseRecorder {
	t.Helper()
	req, rec := newSessionRequest(tt.method, tt.path, tt.cookies, tt.body)
	app.ServeHTTP(rec, req)
	return rec
}

// login signs in the demo account with email and returns the session cookies.
func (app *testApp) login(t *testing.T, email string) []*http.Cookie {
	t.Helper()
	body := marshalObj(t, session.Credentials{Email: email, Password: session.DemoPassword})
	req, rec := newRequest(http.MethodPost, "/v1/session/login", body)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return rec.Result().Cookies()
}

func marshalObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshalObj() failed: %v", err)
	}
	return data
}

func unmarshal(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("json.Unmarshal(%s) failed: %v", rec.Body.String(), err)
	}
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func TestServer_shutdownOnShutdownError(t *testing.T) {
	app := setup(t)
	app.app.GET("/boom", func(echo.Context) error {
		return core.NewShutdownError("integrity issue")
	})

	req, rec := newRequest(http.MethodGet, "/boom")
	app.ServeHTTP(rec, req)

	checkCodeAndData(t, httpTest{wantCode: http.StatusInternalServerError, wantData: marshalObj(t, httpErr{Error: "Internal Server Error"})}, rec)
	assert.Equal(t, 1, app.logger.Count("ERROR"))
	select {
	case <-app.ShutdownSignal():
	default:
		t.Error("shutdown was not signalled")
	}
}
