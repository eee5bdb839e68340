package echoapi

import (
	"net/http"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/trezcool/educonnect/core/school"
	"github.com/trezcool/educonnect/core/session"
)

const (
	maxSuggestions   = 3
	suggestionCutoff = 0.6
)

type (
	// Shell is the authenticated layout: navigation filtered by role around the active screen.
	Shell struct {
		User       session.User    `json:"user"`
		Navigation []session.Route `json:"navigation"`
		Active     string          `json:"active"`
		Content    interface{}     `json:"content,omitempty"`
	}

	LoginScreen struct {
		AppName              string                   `json:"appName"`
		DemoCredentials      []session.DemoCredential `json:"demoCredentials"`
		CaseInsensitiveEmail bool                     `json:"caseInsensitiveEmail"` // emails are trimmed and lowercased before lookup
	}

	NotFoundScreen struct {
		Error       string   `json:"error"`
		Path        string   `json:"path"`
		Suggestions []string `json:"suggestions"`
	}

	FeesContent struct {
		Totals     school.FeeTotals      `json:"totals"`
		Payments   []school.Payment      `json:"payments"`
		Structures []school.FeeStructure `json:"structures"`
	}
)

type contentLoader func(ctx echo.Context, usr session.User) (interface{}, error)

type screens struct {
	appName string
	svc     *school.Service
	content map[string]contentLoader // {route id: loader}
}

func registerScreens(app *echo.Echo, appName string, sessionMw echo.MiddlewareFunc, svc *school.Service) {
	s := &screens{appName: appName, svc: svc}
	s.content = map[string]contentLoader{
		"dashboard":   s.dashboard,
		"students":    s.students,
		"teachers":    s.teachers,
		"classes":     s.classes,
		"assignments": s.assignments,
		"exams":       s.exams,
		"fees":        s.fees,
		"reports":     s.dashboard,
	}

	app.GET(session.LoginPath, s.login, sessionMw)
	for _, route := range session.Routes {
		app.GET(route.Path, s.screen, sessionMw)
	}
}

func (s *screens) login(ctx echo.Context) error {
	p, err := contextProvider(ctx)
	if err != nil {
		return err
	}
	if p.State() == session.StateAuthenticated {
		return ctx.Redirect(http.StatusFound, "/")
	}
	return ctx.JSON(http.StatusOK, LoginScreen{
		AppName:              s.appName,
		DemoCredentials:      session.DemoCredentials(),
		CaseInsensitiveEmail: true,
	})
}

// screen gates the requested path and renders it inside the Shell.
func (s *screens) screen(ctx echo.Context) error {
	p, err := contextProvider(ctx)
	if err != nil {
		return err
	}

	d := session.Decide(p, ctx.Request().URL.Path)
	switch d.Outcome {
	case session.OutcomeRedirect:
		return ctx.Redirect(http.StatusFound, d.Location)
	case session.OutcomeForbidden:
		return errHttpForbidden
	case session.OutcomeLoading:
		return errSessionNotReady
	case session.OutcomeNotFound:
		return echo.ErrNotFound
	}

	shell := Shell{
		User:       d.User,
		Navigation: session.Navigation(d.User.Role),
		Active:     d.Route.ID,
	}
	if load, ok := s.content[d.Route.ID]; ok {
		if shell.Content, err = load(ctx, d.User); err != nil {
			return errors.Wrapf(err, "loading %s screen", d.Route.ID)
		}
	}
	return ctx.JSON(http.StatusOK, shell)
}

// newNotFoundScreen answers paths matching no route, suggesting the closest screens.
func newNotFoundScreen(path string) NotFoundScreen {
	return NotFoundScreen{
		Error:       errHttpNotFound.Message.(string),
		Path:        path,
		Suggestions: suggestRoutes(path),
	}
}

// suggestRoutes returns the route paths closest to path, best match first.
func suggestRoutes(path string) []string {
	type match struct {
		path  string
		ratio float64
	}

	path = strings.ToLower(path)
	matcher := difflib.NewMatcher(nil, strings.Split(path, ""))
	matches := make([]match, 0, len(session.Routes))
	for _, route := range session.Routes {
		matcher.SetSeq1(strings.Split(route.Path, ""))
		if matcher.RealQuickRatio() <= suggestionCutoff || matcher.QuickRatio() <= suggestionCutoff {
			continue
		}
		if ratio := matcher.Ratio(); ratio > suggestionCutoff {
			matches = append(matches, match{route.Path, ratio})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].ratio > matches[j].ratio })

	suggestions := make([]string, 0, maxSuggestions)
	for i := 0; i < len(matches) && i < maxSuggestions; i++ {
		suggestions = append(suggestions, matches[i].path)
	}
	return suggestions
}

// Screen contents

func (s *screens) dashboard(ctx echo.Context, usr session.User) (interface{}, error) {
	return s.svc.Dashboard(ctx.Request().Context(), usr.Role)
}

func (s *screens) students(ctx echo.Context, _ session.User) (interface{}, error) {
	var filter school.StudentFilter
	if err := ctx.Bind(&filter); err != nil {
		return nil, err
	}
	return s.svc.QueryStudents(ctx.Request().Context(), filter)
}

func (s *screens) teachers(ctx echo.Context, _ session.User) (interface{}, error) {
	var filter school.TeacherFilter
	if err := ctx.Bind(&filter); err != nil {
		return nil, err
	}
	return s.svc.QueryTeachers(ctx.Request().Context(), filter)
}

func (s *screens) classes(ctx echo.Context, _ session.User) (interface{}, error) {
	var filter school.ClassFilter
	if err := ctx.Bind(&filter); err != nil {
		return nil, err
	}
	return s.svc.QueryClasses(ctx.Request().Context(), filter)
}

func (s *screens) assignments(ctx echo.Context, _ session.User) (interface{}, error) {
	var filter school.AssignmentFilter
	if err := ctx.Bind(&filter); err != nil {
		return nil, err
	}
	return s.svc.QueryAssignments(ctx.Request().Context(), filter)
}

func (s *screens) exams(ctx echo.Context, _ session.User) (interface{}, error) {
	var filter school.ExamFilter
	if err := ctx.Bind(&filter); err != nil {
		return nil, err
	}
	return s.svc.QueryExams(ctx.Request().Context(), filter)
}

func (s *screens) fees(ctx echo.Context, _ session.User) (interface{}, error) {
	var filter school.PaymentFilter
	if err := ctx.Bind(&filter); err != nil {
		return nil, err
	}

	var (
		content FeesContent
		err     error
	)
	reqCtx := ctx.Request().Context()
	if content.Totals, err = s.svc.Totals(reqCtx); err != nil {
		return nil, err
	}
	if content.Payments, err = s.svc.QueryPayments(reqCtx, filter); err != nil {
		return nil, err
	}
	if content.Structures, err = s.svc.QueryFeeStructures(reqCtx); err != nil {
		return nil, err
	}
	return content, nil
}
