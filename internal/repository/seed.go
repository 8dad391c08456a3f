package repository

import (
	"edoc-portal/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Default records written the first time a list is read.

func DefaultPatients() []entity.Patient {
	return []entity.Patient{
		{ID: 1, Name: "Sarah Johnson", PatientID: "P001", Age: 35, Gender: "Female", Phone: "+1-555-0123", Email: "sarah.johnson@email.com", BloodType: "O+", LastVisit: "2024-01-10", Status: entity.PatientStatusActive, Diagnosis: "Hypertension", AssignedDoctor: "Dr. Smith"},
		{ID: 2, Name: "Michael Chen", PatientID: "P002", Age: 42, Gender: "Male", Phone: "+1-555-0124", Email: "michael.chen@email.com", BloodType: "A-", LastVisit: "2024-01-08", Status: entity.PatientStatusActive, Diagnosis: "Diabetes Type 2", AssignedDoctor: "Dr. Johnson"},
		{ID: 3, Name: "Emily Davis", PatientID: "P003", Age: 28, Gender: "Female", Phone: "+1-555-0125", Email: "emily.davis@email.com", BloodType: "B+", LastVisit: "2024-01-12", Status: entity.PatientStatusInactive, Diagnosis: "Asthma", AssignedDoctor: "Dr. Williams"},
		{ID: 4, Name: "Robert Wilson", PatientID: "P004", Age: 55, Gender: "Male", Phone: "+1-555-0126", Email: "robert.wilson@email.com", BloodType: "AB+", LastVisit: "2024-01-05", Status: entity.PatientStatusActive, Diagnosis: "Heart Disease", AssignedDoctor: "Dr. Brown"},
	}
}

func DefaultAppointments() []entity.Appointment {
	return []entity.Appointment{
		{ID: 1, PatientName: "Sarah Johnson", PatientID: "P001", Date: "2024-01-15", Time: "09:00", Duration: 30, Type: "Consultation", Status: entity.AppointmentStatusConfirmed, Doctor: "Dr. Smith", Notes: "Follow-up consultation"},
		{ID: 2, PatientName: "Michael Chen", PatientID: "P002", Date: "2024-01-15", Time: "10:30", Duration: 45, Type: "Procedure", Status: entity.AppointmentStatusPending, Doctor: "Dr. Johnson", Notes: "Annual checkup"},
		{ID: 3, PatientName: "Emily Davis", PatientID: "P003", Date: "2024-01-16", Time: "14:00", Duration: 60, Type: "Surgery", Status: entity.AppointmentStatusConfirmed, Doctor: "Dr. Williams", Notes: "Minor surgery"},
	}
}

func DefaultTeamMembers() []entity.TeamMember {
	return []entity.TeamMember{
		{ID: 1, Name: "Dr. Sarah Johnson", Role: "Chief Medical Officer", Specialty: "Cardiology", Email: "sarah.johnson@edoc.com", Phone: "+1-555-0101", Avatar: "SJ", Status: entity.TeamStatusActive, Experience: "15 years", Patients: 45, Rating: 4.9, Availability: "Mon-Fri", Department: "Cardiology"},
		{ID: 2, Name: "Dr. Michael Chen", Role: "Senior Neurologist", Specialty: "Neurology", Email: "michael.chen@edoc.com", Phone: "+1-555-0102", Avatar: "MC", Status: entity.TeamStatusActive, Experience: "12 years", Patients: 38, Rating: 4.8, Availability: "Mon-Thu", Department: "Neurology"},
		{ID: 3, Name: "Dr. Emily Rodriguez", Role: "Oncologist", Specialty: "Oncology", Email: "emily.rodriguez@edoc.com", Phone: "+1-555-0103", Avatar: "ER", Status: entity.TeamStatusActive, Experience: "10 years", Patients: 32, Rating: 4.7, Availability: "Mon-Fri", Department: "Oncology"},
		{ID: 4, Name: "Dr. David Thompson", Role: "Orthopedic Surgeon", Specialty: "Orthopedics", Email: "david.thompson@edoc.com", Phone: "+1-555-0104", Avatar: "DT", Status: entity.TeamStatusActive, Experience: "18 years", Patients: 52, Rating: 4.9, Availability: "Tue-Sat", Department: "Orthopedics"},
		{ID: 5, Name: "Dr. Lisa Wang", Role: "Dermatologist", Specialty: "Dermatology", Email: "lisa.wang@edoc.com", Phone: "+1-555-0105", Avatar: "LW", Status: entity.TeamStatusActive, Experience: "8 years", Patients: 28, Rating: 4.6, Availability: "Mon-Fri", Department: "Dermatology"},
		{ID: 6, Name: "Dr. James Wilson", Role: "Pediatrician", Specialty: "Pediatrics", Email: "james.wilson@edoc.com", Phone: "+1-555-0106", Avatar: "JW", Status: entity.TeamStatusActive, Experience: "14 years", Patients: 41, Rating: 4.8, Availability: "Mon-Fri", Department: "Pediatrics"},
	}
}

func DefaultReports() []entity.Report {
	return []entity.Report{
		{
			ID:              "1",
			PatientName:     "John Doe",
			PatientID:       "P001",
			DoctorName:      "Dr. Sarah Johnson",
			Department:      "Cardiology",
			ReportType:      "ECG Analysis",
			Date:            "2024-01-15",
			Status:          entity.ReportStatusPending,
			Priority:        entity.PriorityHigh,
			Summary:         "Abnormal ECG patterns detected, requires immediate review",
			Findings:        "ST elevation in leads II, III, aVF",
			Recommendations: "Immediate cardiology consultation recommended",
			Annotations:     []entity.Annotation{},
		},
		{
			ID:              "2",
			PatientName:     "Jane Smith",
			PatientID:       "P002",
			DoctorName:      "Dr. Michael Chen",
			Department:      "Neurology",
			ReportType:      "MRI Brain Scan",
			Date:            "2024-01-14",
			Status:          entity.ReportStatusReviewed,
			Priority:        entity.PriorityMedium,
			Summary:         "Normal brain MRI findings",
			Findings:        "No significant abnormalities detected",
			Recommendations: "Continue current treatment plan",
			Annotations: []entity.Annotation{
				{ID: 1, Doctor: "Dr. Michael Chen", Date: "2024-01-14", Comment: "MRI findings are within normal limits", Type: entity.AnnotationReview},
			},
		},
		{
			ID:              "3",
			PatientName:     "Bob Wilson",
			PatientID:       "P003",
			DoctorName:      "Dr. Emily Rodriguez",
			Department:      "Oncology",
			ReportType:      "Blood Test Results",
			Date:            "2024-01-13",
			Status:          entity.ReportStatusApproved,
			Priority:        entity.PriorityLow,
			Summary:         "Blood counts within normal range",
			Findings:        "WBC: 7.2, RBC: 4.8, Hemoglobin: 14.2",
			Recommendations: "Continue monitoring as scheduled",
			Annotations: []entity.Annotation{
				{ID: 2, Doctor: "Dr. Emily Rodriguez", Date: "2024-01-13", Comment: "Results are stable, no changes needed", Type: entity.AnnotationApproval},
			},
		},
	}
}

func DefaultAnalytics() entity.AnalyticsData {
	return entity.AnalyticsData{
		Appointments: entity.AppointmentMetrics{
			Total:     156,
			Confirmed: 142,
			Pending:   8,
			Cancelled: 6,
			Monthly:   []int{45, 52, 48, 61, 55, 49, 58, 62, 59, 53, 47, 51},
		},
		Patients: entity.PatientMetrics{
			Total:     89,
			New:       23,
			Returning: 66,
			Demographics: entity.Demographics{
				AgeGroups:  []int{12, 18, 25, 32, 15, 8},
				Gender:     []int{45, 55},
				BloodTypes: []int{38, 8, 12, 4, 7, 6, 4, 11},
			},
		},
		Revenue: entity.RevenueMetrics{
			Total:   decimal.NewFromInt(125000),
			Monthly: decimals(8500, 9200, 8800, 10500, 9800, 8900, 10200, 10800, 10400, 9600, 9200, 9800),
			Services: []entity.ServiceRevenue{
				{Name: "Consultations", Value: decimal.NewFromInt(45000), Percentage: decimal.NewFromInt(36)},
				{Name: "Procedures", Value: decimal.NewFromInt(38000), Percentage: decimal.RequireFromString("30.4")},
				{Name: "Surgeries", Value: decimal.NewFromInt(25000), Percentage: decimal.NewFromInt(20)},
				{Name: "Tests", Value: decimal.NewFromInt(12000), Percentage: decimal.RequireFromString("9.6")},
				{Name: "Other", Value: decimal.NewFromInt(5000), Percentage: decimal.NewFromInt(4)},
			},
		},
		Performance: entity.PerformanceMetrics{
			PatientSatisfaction:   4.7,
			WaitTime:              12,
			AppointmentCompletion: 94.2,
			DoctorEfficiency:      88.5,
		},
	}
}

func decimals(values ...int64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.NewFromInt(v)
	}
	return out
}
