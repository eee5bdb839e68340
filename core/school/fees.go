package school

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/educonnect/core"
)

var newTransactionID = func() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "TXN" + strings.ToUpper(id[:12])
}

func (svc *Service) QueryPayments(ctx context.Context, f PaymentFilter) ([]Payment, error) {
	f.Clean()
	return filter(ctx, svc.db.Payments, func(p Payment) bool {
		return matchesAny(f.Search, p.StudentName, p.RollNo) && (f.Status == "" || strings.EqualFold(p.Status, f.Status))
	})
}

// RecordPayment settles the student's first open payment, or records a new paid one when none is open.
func (svc *Service) RecordPayment(ctx context.Context, rp RecordPayment) (Payment, error) {
	student, err := svc.db.Students.Get(ctx, rp.StudentID)
	if err != nil {
		if errors.Cause(err) == ErrNotFound {
			return Payment{}, core.NewValidationError(
				ErrStudentNotFound, core.FieldError{Field: "studentId", Error: ErrStudentNotFound.Error()},
			)
		}
		return Payment{}, errors.Wrap(err, "getting student")
	}

	txnID := rp.TransactionID
	if txnID == "" {
		txnID = newTransactionID()
	}
	paidDate, method := rp.PaidDate, rp.PaymentMethod

	open, err := filter(ctx, svc.db.Payments, func(p Payment) bool {
		return p.RollNo == student.RollNo && p.IsOpen()
	})
	if err != nil {
		return Payment{}, errors.Wrap(err, "querying payments")
	}

	var payment Payment
	if len(open) > 0 {
		payment = open[0]
		payment.Amount = rp.Amount
		payment.Status = StatusPaid
		payment.PaidDate = &paidDate
		payment.PaymentMethod = &method
		payment.TransactionID = &txnID
		if payment, err = svc.db.Payments.Update(ctx, payment); err != nil {
			return Payment{}, errors.Wrap(err, "updating payment")
		}
	} else {
		payment, err = svc.db.Payments.Insert(ctx, Payment{
			StudentName:   student.Name,
			RollNo:        student.RollNo,
			Class:         student.Class,
			Amount:        rp.Amount,
			DueDate:       rp.PaidDate,
			PaidDate:      &paidDate,
			Status:        StatusPaid,
			PaymentMethod: &method,
			TransactionID: &txnID,
		})
		if err != nil {
			return Payment{}, errors.Wrap(err, "inserting payment")
		}
	}

	if len(open) <= 1 && student.Fees != StatusPaid {
		student.Fees = StatusPaid
		if _, err = svc.db.Students.Update(ctx, student); err != nil {
			return Payment{}, errors.Wrap(err, "updating student fees")
		}
	}
	return payment, nil
}

// Totals sums paid payments as collected and pending or overdue ones as pending.
func (svc *Service) Totals(ctx context.Context) (FeeTotals, error) {
	payments, err := svc.db.Payments.All(ctx)
	if err != nil {
		return FeeTotals{}, errors.Wrap(err, "querying payments")
	}
	var totals FeeTotals
	for _, p := range payments {
		switch {
		case p.Status == StatusPaid:
			totals.Collected += p.Amount
		case p.IsOpen():
			totals.Pending += p.Amount
		}
	}
	return totals, nil
}

func (svc *Service) QueryFeeStructures(ctx context.Context) ([]FeeStructure, error) {
	return svc.db.FeeStructures.All(ctx)
}

func (svc *Service) CreateFeeStructure(ctx context.Context, form FeeStructureForm) (FeeStructure, error) {
	return svc.db.FeeStructures.Insert(ctx, FeeStructure{FeeStructureForm: form, TotalFee: form.total()})
}

// SendReminders emails a reminder for every open payment to the student's family.
// It returns the number of reminders sent.
func (svc *Service) SendReminders(ctx context.Context) (int, error) {
	open, err := filter(ctx, svc.db.Payments, Payment.IsOpen)
	if err != nil {
		return 0, errors.Wrap(err, "querying payments")
	}
	if len(open) == 0 {
		return 0, nil
	}

	students, err := svc.db.Students.All(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "querying students")
	}
	byRollNo := make(map[string]Student, len(students))
	for _, s := range students {
		byRollNo[s.RollNo] = s
	}

	messages := make([]*core.EmailMessage, 0, len(open))
	for _, p := range open {
		student, ok := byRollNo[p.RollNo]
		if !ok {
			svc.logger.Warn("no student for payment", map[string]interface{}{"paymentId": p.ID, "rollNo": p.RollNo})
			continue
		}
		messages = append(messages, reminderMessage(student, p))
	}
	svc.mailSvc.SendMessages(messages...)
	return len(messages), nil
}

func reminderMessage(student Student, p Payment) *core.EmailMessage {
	greeting := student.ParentName
	if greeting == "" {
		greeting = student.Name
	}
	return &core.EmailMessage{
		To:      []mail.Address{{Name: greeting, Address: student.Email}},
		Subject: fmt.Sprintf("Fee reminder: %s (%s)", student.Name, student.RollNo),
		TextContent: fmt.Sprintf(
			"Dear %s,\n\nA payment of $%.2f for %s (%s, %s) due on %s is %s.\n"+
				"Please settle it at your earliest convenience.\n",
			greeting, p.Amount, student.Name, student.RollNo, p.Class, p.DueDate, strings.ToLower(p.Status),
		),
	}
}
