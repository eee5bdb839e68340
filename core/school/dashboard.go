package school

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/educonnect/core/session"
)

type (
	Stat struct {
		Key   string  `json:"key"`
		Label string  `json:"label"`
		Value float64 `json:"value"`
	}

	// Dashboard is the role specific summary shown on the home screen.
	Dashboard struct {
		Role          session.Role `json:"role"`
		Stats         []Stat       `json:"stats"`
		UpcomingExams []Exam       `json:"upcomingExams,omitempty"`
		Assignments   []Assignment `json:"assignments,omitempty"`
		OpenPayments  []Payment    `json:"openPayments,omitempty"`
	}
)

func (d *Dashboard) add(key, label string, value float64) {
	d.Stats = append(d.Stats, Stat{Key: key, Label: label, Value: value})
}

// Stat returns the value of the stat with key, or 0.
func (d Dashboard) Stat(key string) float64 {
	for _, s := range d.Stats {
		if s.Key == key {
			return s.Value
		}
	}
	return 0
}

// Dashboard summarizes the records relevant to role.
func (svc *Service) Dashboard(ctx context.Context, role session.Role) (Dashboard, error) {
	d := Dashboard{Role: role, Stats: []Stat{}}

	exams, err := svc.upcomingExams(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	assignments, err := filter(ctx, svc.db.Assignments, func(a Assignment) bool {
		return a.Status == StatusActive || a.Status == StatusOverdue
	})
	if err != nil {
		return Dashboard{}, errors.Wrap(err, "querying assignments")
	}

	switch role {
	case session.RoleAdmin:
		students, err := svc.db.Students.All(ctx)
		if err != nil {
			return Dashboard{}, errors.Wrap(err, "querying students")
		}
		teachers, err := svc.db.Teachers.All(ctx)
		if err != nil {
			return Dashboard{}, errors.Wrap(err, "querying teachers")
		}
		classes, err := svc.db.Classes.All(ctx)
		if err != nil {
			return Dashboard{}, errors.Wrap(err, "querying classes")
		}
		totals, err := svc.Totals(ctx)
		if err != nil {
			return Dashboard{}, err
		}
		d.add("students", "Total Students", float64(len(students)))
		d.add("teachers", "Total Teachers", float64(len(teachers)))
		d.add("classes", "Classes", float64(len(classes)))
		d.add("feesCollected", "Fees Collected", totals.Collected)
		d.add("feesPending", "Pending Fees", totals.Pending)

	case session.RoleTeacher:
		classes, err := svc.db.Classes.All(ctx)
		if err != nil {
			return Dashboard{}, errors.Wrap(err, "querying classes")
		}
		d.add("classes", "My Classes", float64(len(classes)))
		d.add("activeAssignments", "Active Assignments", float64(len(assignments)))
		d.add("scheduledExams", "Scheduled Exams", float64(len(exams)))
		d.Assignments = assignments
		d.UpcomingExams = exams

	case session.RoleStudent:
		d.add("pendingAssignments", "Pending Assignments", float64(len(assignments)))
		d.add("upcomingExams", "Upcoming Exams", float64(len(exams)))
		d.Assignments = assignments
		d.UpcomingExams = exams

	case session.RoleParent:
		open, err := filter(ctx, svc.db.Payments, Payment.IsOpen)
		if err != nil {
			return Dashboard{}, errors.Wrap(err, "querying payments")
		}
		var due float64
		for _, p := range open {
			due += p.Amount
		}
		d.add("openPayments", "Pending Payments", float64(len(open)))
		d.add("amountDue", "Amount Due", due)
		d.add("upcomingExams", "Upcoming Exams", float64(len(exams)))
		d.OpenPayments = open
		d.UpcomingExams = exams
	}
	return d, nil
}
