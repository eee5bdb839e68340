package school

func strPtr(s string) *string { return &s }

// Seed records loaded into a fresh store.
var (
	SeedStudents = []Student{
		{
			ID: 1,
			StudentForm: StudentForm{
				Name: "Emma Johnson", Email: "emma.j@email.com", RollNo: "ST001", Class: "Grade 10A",
				Phone: "+1234567890", Status: StatusActive, AdmissionDate: "2024-01-15", Fees: StatusPaid,
				ParentName: "John Johnson", ParentPhone: "+1112223333", Address: "123 Maple Street, Springfield",
			},
			Attendance: 94,
		},
		{
			ID: 2,
			StudentForm: StudentForm{
				Name: "Michael Chen", Email: "michael.c@email.com", RollNo: "ST002", Class: "Grade 10B",
				Phone: "+1234567891", Status: StatusActive, AdmissionDate: "2024-01-20", Fees: StatusPending,
				ParentName: "Wei Chen", ParentPhone: "+14445556666", Address: "456 Oak Avenue, Springfield",
			},
			Attendance: 88,
		},
		{
			ID: 3,
			StudentForm: StudentForm{
				Name: "Sarah Williams", Email: "sarah.w@email.com", RollNo: "ST003", Class: "Grade 11A",
				Phone: "+1234567892", Status: StatusActive, AdmissionDate: "2024-02-01", Fees: StatusPaid,
				ParentName: "David Williams", ParentPhone: "+17778889999", Address: "789 Pine Lane, Springfield",
			},
			Attendance: 96,
		},
	}

	SeedTeachers = []Teacher{
		{
			ID: 1,
			TeacherForm: TeacherForm{
				Name: "Dr. Michael Johnson", Email: "michael.j@school.edu", EmpID: "T001", Subject: "Mathematics",
				Phone: "+1234567890", Qualification: "Ph.D Mathematics", Experience: "15 years", JoinDate: "2020-08-15",
			},
			Classes: []string{"Grade 10A", "Grade 11B"}, Status: StatusActive, Salary: "5200",
		},
		{
			ID: 2,
			TeacherForm: TeacherForm{
				Name: "Prof. Sarah Williams", Email: "sarah.w@school.edu", EmpID: "T002", Subject: "English Literature",
				Phone: "+1234567891", Qualification: "M.A. English", Experience: "12 years", JoinDate: "2021-01-10",
			},
			Classes: []string{"Grade 9A", "Grade 10B"}, Status: StatusActive, Salary: "4800",
		},
		{
			ID: 3,
			TeacherForm: TeacherForm{
				Name: "Dr. Robert Chen", Email: "robert.c@school.edu", EmpID: "T003", Subject: "Physics",
				Phone: "+1234567892", Qualification: "Ph.D Physics", Experience: "18 years", JoinDate: "2019-03-20",
			},
			Classes: []string{"Grade 11A", "Grade 12A"}, Status: StatusActive, Salary: "5500",
		},
	}

	SeedClasses = []Class{
		{
			ID: 1,
			ClassForm: ClassForm{
				Name: "Grade 10A", Grade: "10", Section: "A", Teacher: "Dr. Michael Johnson",
				Subject: "Mathematics", Room: "Room 101", Capacity: 35,
			},
			Students: 32, Schedule: "Mon, Wed, Fri - 9:00 AM", Status: StatusActive,
		},
		{
			ID: 2,
			ClassForm: ClassForm{
				Name: "Grade 10B", Grade: "10", Section: "B", Teacher: "Prof. Sarah Williams",
				Subject: "English Literature", Room: "Room 102", Capacity: 30,
			},
			Students: 28, Schedule: "Tue, Thu - 10:30 AM", Status: StatusActive,
		},
		{
			ID: 3,
			ClassForm: ClassForm{
				Name: "Grade 11A", Grade: "11", Section: "A", Teacher: "Dr. Robert Chen",
				Subject: "Physics", Room: "Lab 201", Capacity: 30,
			},
			Students: 25, Schedule: "Mon, Wed, Fri - 2:00 PM", Status: StatusActive,
		},
	}

	SeedAssignments = []Assignment{
		{
			ID: 1,
			AssignmentForm: AssignmentForm{
				Title: "Algebra Problem Set 1", Subject: "Mathematics", Class: "Grade 10A", DueDate: "2024-12-15",
				Points: 20, Instructions: "Complete all problems from chapter 5.",
			},
			Status: StatusActive, Submissions: 28, TotalStudents: 32,
		},
		{
			ID: 2,
			AssignmentForm: AssignmentForm{
				Title: "Shakespeare Essay", Subject: "English Literature", Class: "Grade 11B", DueDate: "2024-12-18",
				Points: 50, Instructions: "Write a 500-word essay on Hamlet.",
			},
			Status: StatusActive, Submissions: 22, TotalStudents: 28,
		},
		{
			ID: 3,
			AssignmentForm: AssignmentForm{
				Title: "Physics Lab Report #3", Subject: "Physics", Class: "Grade 12A", DueDate: "2024-12-12",
				Points: 30, Instructions: "Submit the lab report on motion.",
			},
			Status: StatusOverdue, Submissions: 18, TotalStudents: 25,
		},
	}

	SeedExams = []Exam{
		{
			ID: 1,
			ExamForm: ExamForm{
				Title: "Mathematics Midterm", Subject: "Mathematics", Class: "Grade 10A",
				Date: "2024-12-20", Time: "09:00", Duration: "2 hours", TotalMarks: 100,
			},
			Status: StatusScheduled,
		},
		{
			ID: 2,
			ExamForm: ExamForm{
				Title: "English Literature Final", Subject: "English Literature", Class: "Grade 11B",
				Date: "2024-12-18", Time: "14:00", Duration: "3 hours", TotalMarks: 100,
			},
			Status: StatusCompleted,
		},
	}

	SeedPayments = []Payment{
		{
			ID: 1, StudentName: "Emma Johnson", RollNo: "ST001", Class: "Grade 10A", Amount: 1310,
			DueDate: "2024-12-15", PaidDate: strPtr("2024-12-12"), Status: StatusPaid,
			PaymentMethod: strPtr("Credit Card"), TransactionID: strPtr("TXN123456789"),
		},
		{
			ID: 2, StudentName: "Michael Chen", RollNo: "ST002", Class: "Grade 10B", Amount: 1310,
			DueDate: "2024-12-15", Status: StatusPending,
		},
		{
			ID: 3, StudentName: "Sarah Williams", RollNo: "ST003", Class: "Grade 11A", Amount: 1510,
			DueDate: "2024-11-15", Status: StatusOverdue,
		},
	}

	SeedFeeStructures = []FeeStructure{
		{
			ID: 1,
			FeeStructureForm: FeeStructureForm{
				Class: "Grade 9", TuitionFee: 800, AdmissionFee: 200, ExamFee: 50, LibraryFee: 30, LabFee: 100,
			},
			TotalFee: 1180,
		},
		{
			ID: 2,
			FeeStructureForm: FeeStructureForm{
				Class: "Grade 10", TuitionFee: 900, AdmissionFee: 200, ExamFee: 60, LibraryFee: 30, LabFee: 120,
			},
			TotalFee: 1310,
		},
		{
			ID: 3,
			FeeStructureForm: FeeStructureForm{
				Class: "Grade 11", TuitionFee: 1000, AdmissionFee: 250, ExamFee: 70, LibraryFee: 40, LabFee: 150,
			},
			TotalFee: 1510,
		},
	}
)
