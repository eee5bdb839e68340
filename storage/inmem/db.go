package inmemdb

import (
	"github.com/trezcool/educonnect/core/school"
)

// Open returns empty tables.
func Open() school.Tables {
	return open(false)
}

// OpenSeeded returns tables holding the demo school records.
func OpenSeeded() school.Tables {
	return open(true)
}

func open(seeded bool) school.Tables {
	var (
		students      []school.Student
		teachers      []school.Teacher
		classes       []school.Class
		assignments   []school.Assignment
		exams         []school.Exam
		payments      []school.Payment
		feeStructures []school.FeeStructure
	)
	if seeded {
		students = school.SeedStudents
		teachers = school.SeedTeachers
		classes = school.SeedClasses
		assignments = school.SeedAssignments
		exams = school.SeedExams
		payments = school.SeedPayments
		feeStructures = school.SeedFeeStructures
	}

	return school.Tables{
		Students:      newTable(func(s *school.Student, id int) { s.ID = id }, students...),
		Teachers:      newTable(func(t *school.Teacher, id int) { t.ID = id }, teachers...),
		Classes:       newTable(func(c *school.Class, id int) { c.ID = id }, classes...),
		Assignments:   newTable(func(a *school.Assignment, id int) { a.ID = id }, assignments...),
		Exams:         newTable(func(e *school.Exam, id int) { e.ID = id }, exams...),
		Payments:      newTable(func(p *school.Payment, id int) { p.ID = id }, payments...),
		FeeStructures: newTable(func(f *school.FeeStructure, id int) { f.ID = id }, feeStructures...),
	}
}
