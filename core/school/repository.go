package school

import (
	"context"
	"errors"
)

var (
	// errors
	ErrNotFound        = errors.New("record not found")
	ErrStudentNotFound = errors.New("student not found")
)

type (
	// Record is any row stored in a Table.
	Record interface {
		Key() int
	}

	// Table stores records of a single kind.
	// All returns records ordered by key; Insert assigns the key.
	Table[T Record] interface {
		All(ctx context.Context) ([]T, error)
		Get(ctx context.Context, id int) (T, error)
		Insert(ctx context.Context, rec T) (T, error)
		Update(ctx context.Context, rec T) (T, error)
		Delete(ctx context.Context, ids ...int) error
	}

	// Tables groups the tables backing the Service.
	Tables struct {
		Students      Table[Student]
		Teachers      Table[Teacher]
		Classes       Table[Class]
		Assignments   Table[Assignment]
		Exams         Table[Exam]
		Payments      Table[Payment]
		FeeStructures Table[FeeStructure]
	}
)

func (s Student) Key() int      { return s.ID }
func (t Teacher) Key() int      { return t.ID }
func (c Class) Key() int        { return c.ID }
func (a Assignment) Key() int   { return a.ID }
func (e Exam) Key() int         { return e.ID }
func (p Payment) Key() int      { return p.ID }
func (f FeeStructure) Key() int { return f.ID }
