package school

import (
	"context"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/educonnect/core"
)

// defaults applied to newly created records
const (
	newStudentAttendance  = 100
	newTeacherClass       = "Grade 10A"
	newTeacherSalary      = "0"
	newClassSchedule      = "Not set"
	newAssignmentStudents = 30
)

type Service struct {
	db      Tables
	mailSvc core.EmailService
	logger  core.Logger
}

func NewService(db Tables, mailSvc core.EmailService, logger core.Logger) *Service {
	return &Service{
		db:      db,
		mailSvc: mailSvc,
		logger:  logger,
	}
}

// filter returns the records of table matching keep.
func filter[T Record](ctx context.Context, table Table[T], keep func(T) bool) ([]T, error) {
	all, err := table.All(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]T, 0, len(all))
	for _, rec := range all {
		if keep(rec) {
			res = append(res, rec)
		}
	}
	return res, nil
}

// matchesAny reports whether search is empty or found in one of fields, ignoring case.
func matchesAny(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	for _, f := range fields {
		if core.ContainsFold(f, search) {
			return true
		}
	}
	return false
}

// Students

func (svc *Service) QueryStudents(ctx context.Context, f StudentFilter) ([]Student, error) {
	f.Clean()
	return filter(ctx, svc.db.Students, func(s Student) bool {
		return matchesAny(f.Search, s.Name, s.RollNo) && (f.Class == "" || s.Class == f.Class)
	})
}

func (svc *Service) GetStudent(ctx context.Context, id int) (Student, error) {
	return svc.db.Students.Get(ctx, id)
}

func (svc *Service) CreateStudent(ctx context.Context, form StudentForm) (Student, error) {
	return svc.db.Students.Insert(ctx, Student{StudentForm: form, Attendance: newStudentAttendance})
}

func (svc *Service) UpdateStudent(ctx context.Context, id int, form StudentForm) (Student, error) {
	s, err := svc.db.Students.Get(ctx, id)
	if err != nil {
		return Student{}, err
	}
	s.StudentForm = form
	return svc.db.Students.Update(ctx, s)
}

func (svc *Service) DeleteStudents(ctx context.Context, ids ...int) error {
	return svc.db.Students.Delete(ctx, ids...)
}

// Teachers

func (svc *Service) QueryTeachers(ctx context.Context, f TeacherFilter) ([]Teacher, error) {
	f.Clean()
	return filter(ctx, svc.db.Teachers, func(t Teacher) bool {
		return matchesAny(f.Search, t.Name, t.EmpID, t.Subject) && (f.Subject == "" || t.Subject == f.Subject)
	})
}

func (svc *Service) GetTeacher(ctx context.Context, id int) (Teacher, error) {
	return svc.db.Teachers.Get(ctx, id)
}

func (svc *Service) CreateTeacher(ctx context.Context, form TeacherForm) (Teacher, error) {
	return svc.db.Teachers.Insert(ctx, Teacher{
		TeacherForm: form,
		Classes:     []string{newTeacherClass},
		Status:      StatusActive,
		Salary:      newTeacherSalary,
	})
}

func (svc *Service) UpdateTeacher(ctx context.Context, id int, form TeacherForm) (Teacher, error) {
	t, err := svc.db.Teachers.Get(ctx, id)
	if err != nil {
		return Teacher{}, err
	}
	t.TeacherForm = form
	return svc.db.Teachers.Update(ctx, t)
}

func (svc *Service) DeleteTeachers(ctx context.Context, ids ...int) error {
	return svc.db.Teachers.Delete(ctx, ids...)
}

// Classes

func (svc *Service) QueryClasses(ctx context.Context, f ClassFilter) ([]Class, error) {
	f.Clean()
	return filter(ctx, svc.db.Classes, func(c Class) bool {
		return matchesAny(f.Search, c.Name, c.Teacher, c.Subject) && (f.Grade == "" || c.Grade == f.Grade)
	})
}

func (svc *Service) GetClass(ctx context.Context, id int) (Class, error) {
	return svc.db.Classes.Get(ctx, id)
}

func (svc *Service) CreateClass(ctx context.Context, form ClassForm) (Class, error) {
	return svc.db.Classes.Insert(ctx, Class{
		ClassForm: form,
		Schedule:  newClassSchedule,
		Status:    StatusActive,
	})
}

func (svc *Service) UpdateClass(ctx context.Context, id int, form ClassForm) (Class, error) {
	c, err := svc.db.Classes.Get(ctx, id)
	if err != nil {
		return Class{}, err
	}
	c.ClassForm = form
	return svc.db.Classes.Update(ctx, c)
}

func (svc *Service) DeleteClasses(ctx context.Context, ids ...int) error {
	return svc.db.Classes.Delete(ctx, ids...)
}

// Assignments

func (svc *Service) QueryAssignments(ctx context.Context, f AssignmentFilter) ([]Assignment, error) {
	f.Clean()
	return filter(ctx, svc.db.Assignments, func(a Assignment) bool {
		return matchesAny(f.Search, a.Title, a.Subject, a.Class) && (f.Subject == "" || a.Subject == f.Subject)
	})
}

func (svc *Service) GetAssignment(ctx context.Context, id int) (Assignment, error) {
	return svc.db.Assignments.Get(ctx, id)
}

func (svc *Service) CreateAssignment(ctx context.Context, form AssignmentForm) (Assignment, error) {
	return svc.db.Assignments.Insert(ctx, Assignment{
		AssignmentForm: form,
		Status:         StatusActive,
		TotalStudents:  newAssignmentStudents,
	})
}

func (svc *Service) UpdateAssignment(ctx context.Context, id int, form AssignmentForm) (Assignment, error) {
	a, err := svc.db.Assignments.Get(ctx, id)
	if err != nil {
		return Assignment{}, err
	}
	a.AssignmentForm = form
	return svc.db.Assignments.Update(ctx, a)
}

func (svc *Service) DeleteAssignments(ctx context.Context, ids ...int) error {
	return svc.db.Assignments.Delete(ctx, ids...)
}

// Exams

func (svc *Service) QueryExams(ctx context.Context, f ExamFilter) ([]Exam, error) {
	f.Clean()
	return filter(ctx, svc.db.Exams, func(e Exam) bool {
		return matchesAny(f.Search, e.Title, e.Subject, e.Class) && (f.Status == "" || strings.EqualFold(e.Status, f.Status))
	})
}

func (svc *Service) GetExam(ctx context.Context, id int) (Exam, error) {
	return svc.db.Exams.Get(ctx, id)
}

func (svc *Service) CreateExam(ctx context.Context, form ExamForm) (Exam, error) {
	return svc.db.Exams.Insert(ctx, Exam{ExamForm: form, Status: StatusScheduled})
}

func (svc *Service) UpdateExam(ctx context.Context, id int, form ExamForm) (Exam, error) {
	e, err := svc.db.Exams.Get(ctx, id)
	if err != nil {
		return Exam{}, err
	}
	e.ExamForm = form
	return svc.db.Exams.Update(ctx, e)
}

func (svc *Service) DeleteExams(ctx context.Context, ids ...int) error {
	return svc.db.Exams.Delete(ctx, ids...)
}

// upcomingExams returns scheduled exams sorted by date.
func (svc *Service) upcomingExams(ctx context.Context) ([]Exam, error) {
	exams, err := svc.QueryExams(ctx, ExamFilter{Status: StatusScheduled})
	if err != nil {
		return nil, errors.Wrap(err, "querying exams")
	}
	sort.SliceStable(exams, func(i, j int) bool { return exams[i].Date < exams[j].Date })
	return exams, nil
}
