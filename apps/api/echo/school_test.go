package echoapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/educonnect/core/school"
)

func newStudentForm() school.StudentForm {
	return school.StudentForm{
		Name: "Lucas Martin", Email: "Lucas.M@Email.com", RollNo: "ST004", Class: "Grade 10A",
		Phone: "+1234567893", Status: school.StatusActive, AdmissionDate: "2024-09-01", Fees: school.StatusPending,
		ParentName: "Anne Martin", ParentPhone: "+19998887777", Address: "12 Elm Road, Springfield",
	}
}

func Test_schoolApi_gate(t *testing.T) {
	app := setup(t)
	teacher := app.login(t, "teacher@school.edu")
	student := app.login(t, "student@school.edu")
	parent := app.login(t, "parent@school.edu")

	tests := []httpTest{
		{
			name:     "anonymous",
			method:   http.MethodGet,
			path:     "/v1/students",
			wantCode: http.StatusUnauthorized,
			wantData: marshalObj(t, errNotAuthenticated),
		},
		{
			name:     "role not in allow-list",
			method:   http.MethodGet,
			path:     "/v1/students",
			cookies:  parent,
			wantCode: http.StatusForbidden,
			wantData: marshalObj(t, errPermission),
		},
		{
			name:     "teacher lists students",
			method:   http.MethodGet,
			path:     "/v1/students",
			cookies:  teacher,
			wantCode: http.StatusOK,
		},
		{
			name:     "teacher cannot reach teachers",
			method:   http.MethodGet,
			path:     "/v1/teachers",
			cookies:  teacher,
			wantCode: http.StatusForbidden,
			wantData: marshalObj(t, errPermission),
		},
		{
			name:     "student reads classes",
			method:   http.MethodGet,
			path:     "/v1/classes",
			cookies:  student,
			wantCode: http.StatusOK,
		},
		{
			name:     "student cannot write classes",
			method:   http.MethodDelete,
			path:     "/v1/classes/1",
			cookies:  student,
			wantCode: http.StatusForbidden,
			wantData: marshalObj(t, errPermission),
		},
		{
			name:     "parent reads fee totals",
			method:   http.MethodGet,
			path:     "/v1/fees/totals",
			cookies:  parent,
			wantCode: http.StatusOK,
			wantData: marshalObj(t, school.FeeTotals{Collected: 1310, Pending: 2820}),
		},
		{
			name:     "parent cannot send reminders",
			method:   http.MethodPost,
			path:     "/v1/fees/reminders",
			cookies:  parent,
			wantCode: http.StatusForbidden,
			wantData: marshalObj(t, errPermission),
		},
		{
			name:     "teacher cannot reach fees",
			method:   http.MethodGet,
			path:     "/v1/fees/payments",
			cookies:  teacher,
			wantCode: http.StatusForbidden,
			wantData: marshalObj(t, errPermission),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, app.do(t, tt))
		})
	}
}

func Test_schoolApi_students(t *testing.T) {
	app := setup(t)
	admin := app.login(t, "admin@school.edu")

	// list
	rec := app.do(t, httpTest{method: http.MethodGet, path: "/v1/students?class=Grade+10B", cookies: admin})
	require.Equal(t, http.StatusOK, rec.Code)
	var students []school.Student
	unmarshal(t, rec, &students)
	require.Len(t, students, 1)
	assert.Equal(t, "ST002", students[0].RollNo)

	// create
	rec = app.do(t, httpTest{method: http.MethodPost, path: "/v1/students", body: marshalObj(t, newStudentForm()), cookies: admin})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created school.Student
	unmarshal(t, rec, &created)
	assert.Equal(t, 4, created.ID)
	assert.Equal(t, "lucas.m@email.com", created.Email)
	assert.Equal(t, 100, created.Attendance)

	// update
	form := newStudentForm()
	form.Class = "Grade 11A"
	rec = app.do(t, httpTest{method: http.MethodPut, path: "/v1/students/4", body: marshalObj(t, form), cookies: admin})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated school.Student
	unmarshal(t, rec, &updated)
	assert.Equal(t, "Grade 11A", updated.Class)
	assert.Equal(t, 100, updated.Attendance)

	// retrieve
	rec = app.do(t, httpTest{method: http.MethodGet, path: "/v1/students/4", cookies: admin})
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marshalObj(t, updated)}, rec)

	// delete
	rec = app.do(t, httpTest{method: http.MethodDelete, path: "/v1/students/4", cookies: admin})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = app.do(t, httpTest{method: http.MethodGet, path: "/v1/students/4", cookies: admin})
	checkCodeAndData(t, httpTest{wantCode: http.StatusNotFound, wantData: marshalObj(t, errNotFound)}, rec)
}

func Test_schoolApi_errors(t *testing.T) {
	app := setup(t)
	admin := app.login(t, "admin@school.edu")

	invalid := newStudentForm()
	invalid.Email = "not-an-email"
	invalid.Status = "Expelled"
	invalid.AdmissionDate = "01/09/2024"

	tests := []httpTest{
		{
			name:     "invalid id",
			method:   http.MethodGet,
			path:     "/v1/students/abc",
			wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, httpErr{Error: "invalid id"}),
		},
		{
			name:     "unknown id",
			method:   http.MethodDelete,
			path:     "/v1/exams/99",
			wantCode: http.StatusNotFound,
			wantData: marshalObj(t, errNotFound),
		},
		{
			name:     "invalid form",
			method:   http.MethodPost,
			path:     "/v1/students",
			body:     marshalObj(t, invalid),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{
				"email": "email must be a valid email address",
				"status": "status must be one of [Active Inactive Suspended]",
				"admissionDate": "admissionDate must be a date formatted as YYYY-MM-DD"
			}`),
		},
		{
			name:     "payment for unknown student",
			method:   http.MethodPost,
			path:     "/v1/fees/payments",
			body:     marshalObj(t, school.RecordPayment{StudentID: 42, Amount: 10, PaymentMethod: "Cash", PaidDate: "2024-12-20"}),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"studentId": "student not found"}`),
		},
		{
			name:     "malformed body",
			method:   http.MethodPost,
			path:     "/v1/exams",
			body:     []byte(`{"title": `),
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cookies = admin
			checkCodeAndData(t, tt, app.do(t, tt))
		})
	}
}

func Test_schoolApi_fees(t *testing.T) {
	app := setup(t)
	admin := app.login(t, "admin@school.edu")

	rec := app.do(t, httpTest{method: http.MethodGet, path: "/v1/fees/payments?status=OVERDUE", cookies: admin})
	require.Equal(t, http.StatusOK, rec.Code)
	var payments []school.Payment
	unmarshal(t, rec, &payments)
	require.Len(t, payments, 1)
	assert.Equal(t, "ST003", payments[0].RollNo)

	rec = app.do(t, httpTest{
		method:  http.MethodPost,
		path:    "/v1/fees/payments",
		body:    marshalObj(t, school.RecordPayment{StudentID: 2, Amount: 1310, PaymentMethod: "Card", PaidDate: "2024-12-14"}),
		cookies: admin,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var paid school.Payment
	unmarshal(t, rec, &paid)
	assert.Equal(t, school.StatusPaid, paid.Status)
	require.NotNil(t, paid.TransactionID)

	rec = app.do(t, httpTest{method: http.MethodGet, path: "/v1/fees/totals", cookies: admin})
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marshalObj(t, school.FeeTotals{Collected: 2620, Pending: 1510})}, rec)

	rec = app.do(t, httpTest{
		method:  http.MethodPost,
		path:    "/v1/fees/structures",
		body:    marshalObj(t, school.FeeStructureForm{Class: "Grade 12", TuitionFee: 1100, ExamFee: 100}),
		cookies: admin,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var fs school.FeeStructure
	unmarshal(t, rec, &fs)
	assert.Equal(t, 1200.0, fs.TotalFee)

	rec = app.do(t, httpTest{method: http.MethodPost, path: "/v1/fees/reminders", cookies: admin})
	checkCodeAndData(t, httpTest{wantCode: http.StatusAccepted, wantData: []byte(`{"sent": 1}`)}, rec)
	assert.Len(t, app.mailSvc.SentMessages(), 1)
}
