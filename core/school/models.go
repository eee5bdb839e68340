package school

// Statuses
const (
	StatusActive    = "Active"
	StatusInactive  = "Inactive"
	StatusSuspended = "Suspended"
	StatusOnLeave   = "On Leave"

	StatusDraft     = "Draft"
	StatusOverdue   = "Overdue"
	StatusCompleted = "Completed"

	StatusScheduled = "Scheduled"
	StatusOngoing   = "Ongoing"
	StatusCancelled = "Cancelled"

	StatusPaid    = "Paid"
	StatusPending = "Pending"
)

// filterAll disables a select filter.
const filterAll = "all"

type Student struct {
	ID         int `json:"id"`
	StudentForm
	Attendance int `json:"attendance"`
}

// StudentForm contains information needed to create or update a Student.
type StudentForm struct {
	Name          string `json:"name" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email"`
	RollNo        string `json:"rollNo" validate:"required,notblank"`
	Class         string `json:"class" validate:"required,notblank"`
	Phone         string `json:"phone" validate:"required,min=10"`
	Status        string `json:"status" validate:"required,oneof=Active Inactive Suspended"`
	AdmissionDate string `json:"admissionDate" validate:"required,isodate"`
	Fees          string `json:"fees" validate:"required,oneof=Paid Pending Overdue"`
	ParentName    string `json:"parentName" validate:"required,min=2"`
	ParentPhone   string `json:"parentPhone" validate:"required,min=10"`
	Address       string `json:"address" validate:"required,min=5"`
}

type Teacher struct {
	ID int `json:"id"`
	TeacherForm
	Classes []string `json:"classes"`
	Status  string   `json:"status"`
	Salary  string   `json:"salary"`
}

// TeacherForm contains information needed to create or update a Teacher.
type TeacherForm struct {
	Name          string `json:"name" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email"`
	EmpID         string `json:"empId" validate:"required,notblank"`
	Subject       string `json:"subject" validate:"required,notblank"`
	Phone         string `json:"phone" validate:"required,min=10"`
	Qualification string `json:"qualification" validate:"required,min=2"`
	Experience    string `json:"experience" validate:"required,notblank"`
	JoinDate      string `json:"joinDate" validate:"required,isodate"`
}

type Class struct {
	ID int `json:"id"`
	ClassForm
	Students int    `json:"students"`
	Schedule string `json:"schedule"`
	Status   string `json:"status"`
}

// ClassForm contains information needed to create or update a Class.
type ClassForm struct {
	Name     string `json:"name" validate:"required,min=3"`
	Grade    string `json:"grade" validate:"required,notblank"`
	Section  string `json:"section" validate:"required,notblank"`
	Teacher  string `json:"teacher" validate:"required,min=2"`
	Subject  string `json:"subject" validate:"required,min=2"`
	Room     string `json:"room" validate:"required,notblank"`
	Capacity int    `json:"capacity" validate:"min=1"`
}

type Assignment struct {
	ID int `json:"id"`
	AssignmentForm
	Status        string `json:"status"`
	Submissions   int    `json:"submissions"`
	TotalStudents int    `json:"totalStudents"`
}

// SubmissionRate is the share of students who submitted, in percent.
func (a Assignment) SubmissionRate() int {
	if a.TotalStudents == 0 {
		return 0
	}
	return int(float64(a.Submissions)/float64(a.TotalStudents)*100 + .5)
}

// AssignmentForm contains information needed to create or update an Assignment.
type AssignmentForm struct {
	Title        string `json:"title" validate:"required,min=3"`
	Subject      string `json:"subject" validate:"required,notblank"`
	Class        string `json:"class" validate:"required,notblank"`
	DueDate      string `json:"dueDate" validate:"required,isodate"`
	Points       int    `json:"points" validate:"min=1"`
	Instructions string `json:"instructions,omitempty"`
}

type Exam struct {
	ID int `json:"id"`
	ExamForm
	Status string `json:"status"`
}

// ExamForm contains information needed to create or update an Exam.
type ExamForm struct {
	Title      string `json:"title" validate:"required,min=3"`
	Subject    string `json:"subject" validate:"required,notblank"`
	Class      string `json:"class" validate:"required,notblank"`
	Date       string `json:"date" validate:"required,isodate"`
	Time       string `json:"time" validate:"required,notblank"`
	Duration   string `json:"duration" validate:"required,notblank"`
	TotalMarks int    `json:"totalMarks" validate:"min=1"`
}

type FeeStructure struct {
	ID int `json:"id"`
	FeeStructureForm
	TotalFee float64 `json:"totalFee"`
}

// FeeStructureForm contains information needed to create a FeeStructure.
type FeeStructureForm struct {
	Class        string  `json:"class" validate:"required,notblank"`
	TuitionFee   float64 `json:"tuitionFee" validate:"min=0"`
	AdmissionFee float64 `json:"admissionFee" validate:"min=0"`
	ExamFee      float64 `json:"examFee" validate:"min=0"`
	LibraryFee   float64 `json:"libraryFee" validate:"min=0"`
	LabFee       float64 `json:"labFee" validate:"min=0"`
}

func (f FeeStructureForm) total() float64 {
	return f.TuitionFee + f.AdmissionFee + f.ExamFee + f.LibraryFee + f.LabFee
}

type Payment struct {
	ID            int     `json:"id"`
	StudentName   string  `json:"studentName"`
	RollNo        string  `json:"rollNo"`
	Class         string  `json:"class"`
	Amount        float64 `json:"amount"`
	DueDate       string  `json:"dueDate"`
	PaidDate      *string `json:"paidDate"`
	Status        string  `json:"status"`
	PaymentMethod *string `json:"paymentMethod"`
	TransactionID *string `json:"transactionId"`
}

func (p Payment) IsOpen() bool {
	return p.Status == StatusPending || p.Status == StatusOverdue
}

// RecordPayment contains information needed to record a fee payment.
type RecordPayment struct {
	StudentID     int     `json:"studentId" validate:"min=1"`
	Amount        float64 `json:"amount" validate:"min=1"`
	PaymentMethod string  `json:"paymentMethod" validate:"required,notblank"`
	TransactionID string  `json:"transactionId,omitempty"`
	PaidDate      string  `json:"paidDate" validate:"required,isodate"`
}

type (
	StudentFilter struct {
		Search string `query:"search"`
		Class  string `query:"class"`
	}

	TeacherFilter struct {
		Search  string `query:"search"`
		Subject string `query:"subject"`
	}

	ClassFilter struct {
		Search string `query:"search"`
		Grade  string `query:"grade"`
	}

	AssignmentFilter struct {
		Search  string `query:"search"`
		Subject string `query:"subject"`
	}

	ExamFilter struct {
		Search string `query:"search"`
		Status string `query:"status"`
	}

	PaymentFilter struct {
		Search string `query:"search"`
		Status string `query:"status"`
	}
)

// FeeTotals sums collected and outstanding payments.
type FeeTotals struct {
	Collected float64 `json:"collected"`
	Pending   float64 `json:"pending"`
}
