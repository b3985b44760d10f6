package store

import (
	"time"

	"github.com/clovera/admin-api/internal/issue"
	"github.com/clovera/admin-api/internal/patient"
	"github.com/clovera/admin-api/internal/user"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("store: bad seed timestamp " + value)
	}
	return t
}

func rolePtr(r user.Role) *user.Role {
	return &r
}

// SeedUsers returns the canonical staffing roster, including the pending
// registrations awaiting approval.
func SeedUsers() []*user.User {
	return []*user.User{
		{
			ID:        "u1",
			FirstName: "John",
			LastName:  "Doe",
			Email:     "john.doe@clovera.com",
			Phone:     "123-456-7890",
			Role:      rolePtr(user.RoleDoctor),
			Status:    user.StatusActive,
			JoinDate:  date(2023, time.January, 15),
			Avatar:    "https://i.pravatar.cc/150?img=1",
		},
		{
			ID:        "u2",
			FirstName: "Jane",
			LastName:  "Smith",
			Email:     "jane.smith@clovera.com",
			Phone:     "123-456-7891",
			Role:      rolePtr(user.RoleNurse),
			Status:    user.StatusActive,
			JoinDate:  date(2023, time.February, 10),
			Avatar:    "https://i.pravatar.cc/150?img=2",
		},
		{
			ID:        "u3",
			FirstName: "Robert",
			LastName:  "Johnson",
			Email:     "r.johnson@clovera.com",
			Phone:     "123-456-7892",
			Status:    user.StatusPending,
			JoinDate:  date(2023, time.May, 5),
			Avatar:    "https://i.pravatar.cc/150?img=3",
			Documents: []user.Document{
				{
					ID:         "d1",
					Type:       user.DocumentTypeID,
					Name:       "Driver's License",
					URL:        "/documents/license.pdf",
					UploadDate: date(2023, time.May, 5),
				},
				{
					ID:         "d2",
					Type:       user.DocumentTypeCertificate,
					Name:       "Nursing Certificate",
					URL:        "/documents/certificate.pdf",
					UploadDate: date(2023, time.May, 5),
				},
			},
		},
		{
			ID:        "u4",
			FirstName: "Emily",
			LastName:  "Williams",
			Email:     "e.williams@clovera.com",
			Phone:     "123-456-7893",
			Role:      rolePtr(user.RolePhysicalTherapist),
			Status:    user.StatusActive,
			JoinDate:  date(2023, time.March, 22),
			Avatar:    "https://i.pravatar.cc/150?img=4",
		},
		{
			ID:        "u5",
			FirstName: "Michael",
			LastName:  "Brown",
			Email:     "m.brown@clovera.com",
			Phone:     "123-456-7894",
			Role:      rolePtr(user.RoleCNA),
			Status:    user.StatusBanned,
			JoinDate:  date(2023, time.January, 30),
			Avatar:    "https://i.pravatar.cc/150?img=5",
		},
		{
			ID:        "u6",
			FirstName: "Sarah",
			LastName:  "Davis",
			Email:     "s.davis@clovera.com",
			Phone:     "123-456-7895",
			Status:    user.StatusPending,
			JoinDate:  date(2023, time.May, 10),
			Avatar:    "https://i.pravatar.cc/150?img=6",
			Documents: []user.Document{
				{
					ID:         "d3",
					Type:       user.DocumentTypeLicense,
					Name:       "Medical License",
					URL:        "/documents/med-license.pdf",
					UploadDate: date(2023, time.May, 10),
				},
				{
					ID:         "d4",
					Type:       user.DocumentTypeDegree,
					Name:       "Medical Degree",
					URL:        "/documents/degree.pdf",
					UploadDate: date(2023, time.May, 10),
				},
			},
		},
		{
			ID:        "u7",
			FirstName: "David",
			LastName:  "Miller",
			Email:     "d.miller@clovera.com",
			Phone:     "123-456-7896",
			Role:      rolePtr(user.RoleManager),
			Status:    user.StatusActive,
			JoinDate:  date(2022, time.November, 15),
			Avatar:    "https://i.pravatar.cc/150?img=7",
		},
		{
			ID:        "u8",
			FirstName: "Jessica",
			LastName:  "Wilson",
			Email:     "j.wilson@clovera.com",
			Phone:     "123-456-7897",
			Role:      rolePtr(user.RoleChargeNurse),
			Status:    user.StatusActive,
			JoinDate:  date(2022, time.December, 3),
			Avatar:    "https://i.pravatar.cc/150?img=8",
		},
		{
			ID:        "u9",
			FirstName: "Thomas",
			LastName:  "Anderson",
			Email:     "t.anderson@clovera.com",
			Phone:     "123-456-7898",
			Status:    user.StatusPending,
			JoinDate:  date(2023, time.May, 15),
			Avatar:    "https://i.pravatar.cc/150?img=9",
			Documents: []user.Document{
				{
					ID:         "d5",
					Type:       user.DocumentTypeReference,
					Name:       "Reference Letter",
					URL:        "/documents/reference.pdf",
					UploadDate: date(2023, time.May, 15),
				},
			},
		},
		{
			ID:        "u10",
			FirstName: "Amanda",
			LastName:  "Taylor",
			Email:     "a.taylor@clovera.com",
			Phone:     "123-456-7899",
			Role:      rolePtr(user.RoleSpeechTherapist),
			Status:    user.StatusActive,
			JoinDate:  date(2023, time.April, 1),
			Avatar:    "https://i.pravatar.cc/150?img=10",
		},
	}
}

func SeedPatients() []*patient.Patient {
	return []*patient.Patient{
		{
			ID:            "p1",
			FirstName:     "Alice",
			LastName:      "Johnson",
			Age:           65,
			Gender:        patient.GenderFemale,
			RoomNumber:    "101",
			AdmissionDate: date(2023, time.April, 15),
			Diagnosis:     "Pneumonia",
			PrimaryDoctor: "Dr. John Doe",
			Status:        patient.StatusInpatient,
		},
		{
			ID:            "p2",
			FirstName:     "Bob",
			LastName:      "Smith",
			Age:           45,
			Gender:        patient.GenderMale,
			RoomNumber:    "102",
			AdmissionDate: date(2023, time.April, 10),
			Diagnosis:     "Fractured Femur",
			PrimaryDoctor: "Dr. John Doe",
			Status:        patient.StatusInpatient,
		},
		{
			ID:            "p3",
			FirstName:     "Carol",
			LastName:      "Brown",
			Age:           35,
			Gender:        patient.GenderFemale,
			AdmissionDate: date(2023, time.April, 20),
			Diagnosis:     "Physical Therapy",
			PrimaryDoctor: "Dr. Jane Smith",
			Status:        patient.StatusOutpatient,
		},
		{
			ID:            "p4",
			FirstName:     "David",
			LastName:      "Wilson",
			Age:           72,
			Gender:        patient.GenderMale,
			RoomNumber:    "105",
			AdmissionDate: date(2023, time.March, 30),
			Diagnosis:     "Heart Failure",
			PrimaryDoctor: "Dr. John Doe",
			Status:        patient.StatusInpatient,
		},
		{
			ID:            "p5",
			FirstName:     "Eva",
			LastName:      "Martinez",
			Age:           28,
			Gender:        patient.GenderFemale,
			AdmissionDate: date(2023, time.April, 22),
			Diagnosis:     "Speech Therapy Follow-up",
			PrimaryDoctor: "Dr. Jane Smith",
			Status:        patient.StatusOutpatient,
		},
		{
			ID:            "p6",
			FirstName:     "Frank",
			LastName:      "Garcia",
			Age:           55,
			Gender:        patient.GenderMale,
			RoomNumber:    "110",
			AdmissionDate: date(2023, time.April, 5),
			Diagnosis:     "COPD Exacerbation",
			PrimaryDoctor: "Dr. John Doe",
			Status:        patient.StatusDischarged,
		},
	}
}

func SeedIssues() []*issue.Issue {
	return []*issue.Issue{
		{
			ID:          "i1",
			UserID:      "u2",
			UserName:    "Jane Smith",
			UserRole:    user.RoleNurse,
			Title:       "Medication System Error",
			Description: "The medication tracking system is showing errors when attempting to log administered medications.",
			Status:      issue.StatusOpen,
			Priority:    issue.PriorityHigh,
			CreatedAt:   ts("2023-05-01T10:30:00Z"),
			UpdatedAt:   ts("2023-05-01T10:30:00Z"),
		},
		{
			ID:          "i2",
			UserID:      "u4",
			UserName:    "Emily Williams",
			UserRole:    user.RolePhysicalTherapist,
			Title:       "Equipment Maintenance Required",
			Description: "The rehabilitation room equipment needs maintenance. The treadmill is making unusual noises.",
			Status:      issue.StatusInProgress,
			Priority:    issue.PriorityMedium,
			CreatedAt:   ts("2023-04-28T14:15:00Z"),
			UpdatedAt:   ts("2023-04-29T09:20:00Z"),
			Responses: []issue.Response{
				{
					ID:        "r1",
					AdminID:   "admin-001",
					AdminName: "Admin User",
					Text:      "We've scheduled a maintenance check for tomorrow. Thank you for reporting this issue.",
					CreatedAt: ts("2023-04-29T09:20:00Z"),
				},
			},
		},
		{
			ID:          "i3",
			UserID:      "u8",
			UserName:    "Jessica Wilson",
			UserRole:    user.RoleChargeNurse,
			Title:       "Staff Scheduling Conflict",
			Description: "There's a scheduling conflict for the night shift on May 10th. We're short-staffed for that night.",
			Status:      issue.StatusResolved,
			Priority:    issue.PriorityHigh,
			CreatedAt:   ts("2023-04-25T16:45:00Z"),
			UpdatedAt:   ts("2023-04-27T11:10:00Z"),
			Responses: []issue.Response{
				{
					ID:        "r2",
					AdminID:   "admin-001",
					AdminName: "Admin User",
					Text:      "I've reviewed the schedule and reassigned staff to cover the night shift on May 10th.",
					CreatedAt: ts("2023-04-26T10:00:00Z"),
				},
				{
					ID:        "r3",
					AdminID:   "admin-001",
					AdminName: "Admin User",
					Text:      "The schedule has been updated and all shifts are now properly staffed. Please let me know if there are any other issues.",
					CreatedAt: ts("2023-04-27T11:10:00Z"),
				},
			},
		},
	}
}
