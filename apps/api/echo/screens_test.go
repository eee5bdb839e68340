package echoapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/educonnect/core/session"
)

func Test_screens_gate(t *testing.T) {
	app := setup(t)
	admin := app.login(t, "admin@school.edu")
	parent := app.login(t, "parent@school.edu")

	tests := []struct {
		name         string
		path         string
		cookies      []*http.Cookie
		wantCode     int
		wantLocation string
		wantActive   string
	}{
		{name: "anonymous dashboard", path: "/", wantCode: http.StatusFound, wantLocation: "/login"},
		{name: "anonymous settings", path: "/settings", wantCode: http.StatusFound, wantLocation: "/login"},
		{name: "admin dashboard", path: "/", cookies: admin, wantCode: http.StatusOK, wantActive: "dashboard"},
		{name: "admin settings", path: "/settings", cookies: admin, wantCode: http.StatusOK, wantActive: "settings"},
		{name: "trailing slash", path: "/students/", cookies: admin, wantCode: http.StatusOK, wantActive: "students"},
		{name: "parent fees", path: "/fees", cookies: parent, wantCode: http.StatusOK, wantActive: "fees"},
		{name: "parent hostel", path: "/hostel", cookies: parent, wantCode: http.StatusOK, wantActive: "hostel"},
		{name: "parent students", path: "/students", cookies: parent, wantCode: http.StatusForbidden},
		{name: "parent settings", path: "/settings", cookies: parent, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(t, httpTest{method: http.MethodGet, path: tt.path, cookies: tt.cookies})
			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())

			switch tt.wantCode {
			case http.StatusFound:
				assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			case http.StatusForbidden:
				checkCodeAndData(t, httpTest{wantCode: http.StatusForbidden, wantData: marshalObj(t, errPermission)}, rec)
			case http.StatusOK:
				var shell struct {
					User       session.User    `json:"user"`
					Navigation []session.Route `json:"navigation"`
					Active     string          `json:"active"`
				}
				unmarshal(t, rec, &shell)
				assert.Equal(t, tt.wantActive, shell.Active)
				assert.Len(t, shell.Navigation, len(session.Navigation(shell.User.Role)))
			}
		})
	}
}

func Test_screens_content(t *testing.T) {
	app := setup(t)
	admin := app.login(t, "admin@school.edu")
	parent := app.login(t, "parent@school.edu")

	t.Run("admin dashboard", func(t *testing.T) {
		rec := app.do(t, httpTest{method: http.MethodGet, path: "/", cookies: admin})
		var shell struct {
			Content struct {
				Role  session.Role `json:"role"`
				Stats []struct {
					Key   string  `json:"key"`
					Value float64 `json:"value"`
				} `json:"stats"`
			} `json:"content"`
		}
		unmarshal(t, rec, &shell)
		assert.Equal(t, session.RoleAdmin, shell.Content.Role)
		require.NotEmpty(t, shell.Content.Stats)
		assert.Equal(t, "students", shell.Content.Stats[0].Key)
		assert.Equal(t, float64(3), shell.Content.Stats[0].Value)
	})

	t.Run("students filtered by query", func(t *testing.T) {
		rec := app.do(t, httpTest{method: http.MethodGet, path: "/students?search=chen", cookies: admin})
		var shell struct {
			Content []struct {
				RollNo string `json:"rollNo"`
			} `json:"content"`
		}
		unmarshal(t, rec, &shell)
		require.Len(t, shell.Content, 1)
		assert.Equal(t, "ST002", shell.Content[0].RollNo)
	})

	t.Run("parent fees", func(t *testing.T) {
		rec := app.do(t, httpTest{method: http.MethodGet, path: "/fees", cookies: parent})
		var shell struct {
			Content FeesContent `json:"content"`
		}
		unmarshal(t, rec, &shell)
		assert.Len(t, shell.Content.Payments, 3)
		assert.Len(t, shell.Content.Structures, 3)
		assert.Equal(t, float64(1310), shell.Content.Totals.Collected)
	})

	t.Run("static screen has no content", func(t *testing.T) {
		rec := app.do(t, httpTest{method: http.MethodGet, path: "/events", cookies: parent})
		var shell map[string]interface{}
		unmarshal(t, rec, &shell)
		assert.NotContains(t, shell, "content")
	})
}

func Test_screens_login(t *testing.T) {
	app := setup(t)

	rec := app.do(t, httpTest{method: http.MethodGet, path: "/login"})
	require.Equal(t, http.StatusOK, rec.Code)
	var screen LoginScreen
	unmarshal(t, rec, &screen)
	assert.Equal(t, "EduConnect", screen.AppName)
	assert.Equal(t, session.DemoCredentials(), screen.DemoCredentials)
	assert.True(t, screen.CaseInsensitiveEmail)

	cookies := app.login(t, "student@school.edu")
	rec = app.do(t, httpTest{method: http.MethodGet, path: "/login", cookies: cookies})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func Test_screens_notFound(t *testing.T) {
	app := setup(t)

	tests := []struct {
		name string
		path string
		want []string
	}{
		{name: "typo", path: "/studnts", want: []string{"/students"}},
		{name: "unknown api path", path: "/v1/studnts", want: []string{"/students"}},
		{name: "nothing close", path: "/zzzzzzzzzzzz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(t, httpTest{method: http.MethodGet, path: tt.path})
			require.Equal(t, http.StatusNotFound, rec.Code)
			var screen NotFoundScreen
			unmarshal(t, rec, &screen)
			assert.Equal(t, errNotFound.Error, screen.Error)
			assert.Equal(t, tt.path, screen.Path)
			assert.Equal(t, tt.want, screen.Suggestions)
		})
	}
}

func Test_suggestRoutes(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"/teacher", []string{"/teachers"}},
		{"/Exams", []string{"/exams"}},
		{"/setting", []string{"/settings"}},
		{"/hostal", []string{"/hostel"}},
		{"/qwertyuiop", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, suggestRoutes(tt.path))
		})
	}
}
