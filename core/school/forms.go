package school

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/educonnect/core"
)

func (f *StudentForm) Validate(validate *validator.Validate) error {
	f.Name = core.CleanString(f.Name)
	f.Email = core.CleanString(f.Email, true /* lower */)
	f.RollNo = core.CleanString(f.RollNo)
	f.Class = core.CleanString(f.Class)
	f.Phone = core.CleanString(f.Phone)
	f.ParentName = core.CleanString(f.ParentName)
	f.ParentPhone = core.CleanString(f.ParentPhone)
	f.Address = core.CleanString(f.Address)
	return validate.Struct(f)
}

func (f *TeacherForm) Validate(validate *validator.Validate) error {
	f.Name = core.CleanString(f.Name)
	f.Email = core.CleanString(f.Email, true /* lower */)
	f.EmpID = core.CleanString(f.EmpID)
	f.Subject = core.CleanString(f.Subject)
	f.Phone = core.CleanString(f.Phone)
	f.Qualification = core.CleanString(f.Qualification)
	f.Experience = core.CleanString(f.Experience)
	return validate.Struct(f)
}

func (f *ClassForm) Validate(validate *validator.Validate) error {
	f.Name = core.CleanString(f.Name)
	f.Teacher = core.CleanString(f.Teacher)
	f.Subject = core.CleanString(f.Subject)
	f.Room = core.CleanString(f.Room)
	return validate.Struct(f)
}

func (f *AssignmentForm) Validate(validate *validator.Validate) error {
	f.Title = core.CleanString(f.Title)
	f.Subject = core.CleanString(f.Subject)
	f.Class = core.CleanString(f.Class)
	f.Instructions = core.CleanString(f.Instructions)
	return validate.Struct(f)
}

func (f *ExamForm) Validate(validate *validator.Validate) error {
	f.Title = core.CleanString(f.Title)
	f.Subject = core.CleanString(f.Subject)
	f.Class = core.CleanString(f.Class)
	return validate.Struct(f)
}

func (f *FeeStructureForm) Validate(validate *validator.Validate) error {
	f.Class = core.CleanString(f.Class)
	return validate.Struct(f)
}

func (rp *RecordPayment) Validate(validate *validator.Validate) error {
	rp.PaymentMethod = core.CleanString(rp.PaymentMethod)
	rp.TransactionID = core.CleanString(rp.TransactionID)
	return validate.Struct(rp)
}

// Clean normalizes search terms. "all" and empty select values disable the filter.
func (f *StudentFilter) Clean() {
	f.Search = core.CleanString(f.Search)
	f.Class = cleanSelect(f.Class)
}

func (f *TeacherFilter) Clean() {
	f.Search = core.CleanString(f.Search)
	f.Subject = cleanSelect(f.Subject)
}

func (f *ClassFilter) Clean() {
	f.Search = core.CleanString(f.Search)
	f.Grade = cleanSelect(f.Grade)
}

func (f *AssignmentFilter) Clean() {
	f.Search = core.CleanString(f.Search)
	f.Subject = cleanSelect(f.Subject)
}

func (f *ExamFilter) Clean() {
	f.Search = core.CleanString(f.Search)
	f.Status = cleanSelect(f.Status)
}

func (f *PaymentFilter) Clean() {
	f.Search = core.CleanString(f.Search)
	f.Status = cleanSelect(f.Status)
}

func cleanSelect(v string) string {
	v = core.CleanString(v)
	if v == filterAll {
		return ""
	}
	return v
}
