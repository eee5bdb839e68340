package echoapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/educonnect/core/school"
	"github.com/trezcool/educonnect/core/session"
)

type validatable interface {
	Validate(validate *validator.Validate) error
}

func bindAndValidate(ctx echo.Context, data validatable, validate *validator.Validate) error {
	if err := ctx.Bind(data); err != nil {
		return errors.Wrap(err, "binding request")
	}
	return data.Validate(validate)
}

func paramID(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// resourceApi serves list/detail endpoints of one school record kind.
// R is the record, F its form and Q its query filter.
type resourceApi[R any, F any, Q any] struct {
	name     string
	validate *validator.Validate

	query  func(context.Context, Q) ([]R, error)
	get    func(context.Context, int) (R, error)
	create func(context.Context, F) (R, error)
	update func(context.Context, int, F) (R, error)
	delete func(context.Context, ...int) error
}

func (api *resourceApi[R, F, Q]) register(g *echo.Group, path, routeID string, writers ...session.Role) {
	rg := g.Group(path, routeMiddleware(routeID))
	write := rolesMiddleware(writers...)

	rg.GET("", api.list)
	rg.POST("", api.createOne, write)
	rg.GET("/:id", api.retrieve)
	rg.PUT("/:id", api.updateOne, write)
	rg.DELETE("/:id", api.destroy, write)
}

func (api *resourceApi[R, F, Q]) list(ctx echo.Context) error {
	var filter Q
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding filter")
	}
	recs, err := api.query(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "querying "+api.name)
	}
	if recs == nil {
		recs = []R{}
	}
	return ctx.JSON(http.StatusOK, recs)
}

func (api *resourceApi[R, F, Q]) retrieve(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}
	rec, err := api.get(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "getting "+api.name)
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *resourceApi[R, F, Q]) bindForm(ctx echo.Context) (F, error) {
	var data F
	v, ok := any(&data).(validatable)
	if !ok {
		return data, errors.New(api.name + " form cannot be validated")
	}
	return data, bindAndValidate(ctx, v, api.validate)
}

func (api *resourceApi[R, F, Q]) createOne(ctx echo.Context) error {
	data, err := api.bindForm(ctx)
	if err != nil {
		return err
	}
	rec, err := api.create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating "+api.name)
	}
	return ctx.JSON(http.StatusCreated, rec)
}

func (api *resourceApi[R, F, Q]) updateOne(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}
	data, err := api.bindForm(ctx)
	if err != nil {
		return err
	}
	rec, err := api.update(ctx.Request().Context(), id, data)
	if err != nil {
		return errors.Wrap(err, "updating "+api.name)
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *resourceApi[R, F, Q]) destroy(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}
	if _, err = api.get(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "getting "+api.name)
	}
	if err = api.delete(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting "+api.name)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Fees

type feesApi struct {
	svc      *school.Service
	validate *validator.Validate
}

type remindersResponse struct {
	Sent int `json:"sent"`
}

func (api *feesApi) queryPayments(ctx echo.Context) error {
	var filter school.PaymentFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding filter")
	}
	payments, err := api.svc.QueryPayments(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "querying payments")
	}
	return ctx.JSON(http.StatusOK, payments)
}

func (api *feesApi) recordPayment(ctx echo.Context) error {
	var data school.RecordPayment
	if err := bindAndValidate(ctx, &data, api.validate); err != nil {
		return err
	}
	payment, err := api.svc.RecordPayment(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "recording payment")
	}
	return ctx.JSON(http.StatusCreated, payment)
}

func (api *feesApi) totals(ctx echo.Context) error {
	totals, err := api.svc.Totals(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "computing fee totals")
	}
	return ctx.JSON(http.StatusOK, totals)
}

func (api *feesApi) queryStructures(ctx echo.Context) error {
	structures, err := api.svc.QueryFeeStructures(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying fee structures")
	}
	return ctx.JSON(http.StatusOK, structures)
}

func (api *feesApi) createStructure(ctx echo.Context) error {
	var data school.FeeStructureForm
	if err := bindAndValidate(ctx, &data, api.validate); err != nil {
		return err
	}
	fs, err := api.svc.CreateFeeStructure(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating fee structure")
	}
	return ctx.JSON(http.StatusCreated, fs)
}

func (api *feesApi) sendReminders(ctx echo.Context) error {
	n, err := api.svc.SendReminders(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "sending reminders")
	}
	return ctx.JSON(http.StatusAccepted, remindersResponse{Sent: n})
}

func (api *feesApi) register(g *echo.Group) {
	fg := g.Group("/fees", routeMiddleware("fees"))
	admin := rolesMiddleware(session.RoleAdmin)

	fg.GET("/payments", api.queryPayments)
	fg.POST("/payments", api.recordPayment, admin)
	fg.GET("/totals", api.totals)
	fg.GET("/structures", api.queryStructures)
	fg.POST("/structures", api.createStructure, admin)
	fg.POST("/reminders", api.sendReminders, admin)
}

func registerSchoolAPI(g *echo.Group, svc *school.Service, validate *validator.Validate) {
	students := &resourceApi[school.Student, school.StudentForm, school.StudentFilter]{
		name: "student", validate: validate,
		query: svc.QueryStudents, get: svc.GetStudent, create: svc.CreateStudent,
		update: svc.UpdateStudent, delete: svc.DeleteStudents,
	}
	students.register(g, "/students", "students", session.RoleAdmin, session.RoleTeacher)

	teachers := &resourceApi[school.Teacher, school.TeacherForm, school.TeacherFilter]{
		name: "teacher", validate: validate,
		query: svc.QueryTeachers, get: svc.GetTeacher, create: svc.CreateTeacher,
		update: svc.UpdateTeacher, delete: svc.DeleteTeachers,
	}
	teachers.register(g, "/teachers", "teachers", session.RoleAdmin)

	classes := &resourceApi[school.Class, school.ClassForm, school.ClassFilter]{
		name: "class", validate: validate,
		query: svc.QueryClasses, get: svc.GetClass, create: svc.CreateClass,
		update: svc.UpdateClass, delete: svc.DeleteClasses,
	}
	classes.register(g, "/classes", "classes", session.RoleAdmin)

	assignments := &resourceApi[school.Assignment, school.AssignmentForm, school.AssignmentFilter]{
		name: "assignment", validate: validate,
		query: svc.QueryAssignments, get: svc.GetAssignment, create: svc.CreateAssignment,
		update: svc.UpdateAssignment, delete: svc.DeleteAssignments,
	}
	assignments.register(g, "/assignments", "assignments", session.RoleAdmin, session.RoleTeacher)

	exams := &resourceApi[school.Exam, school.ExamForm, school.ExamFilter]{
		name: "exam", validate: validate,
		query: svc.QueryExams, get: svc.GetExam, create: svc.CreateExam,
		update: svc.UpdateExam, delete: svc.DeleteExams,
	}
	exams.register(g, "/exams", "exams", session.RoleAdmin, session.RoleTeacher)

	fees := &feesApi{svc: svc, validate: validate}
	fees.register(g)
}
