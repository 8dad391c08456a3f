package entity

import "github.com/shopspring/decimal"

type AnalyticsData struct {
	Appointments AppointmentMetrics `json:"appointments"`
	Patients     PatientMetrics     `json:"patients"`
	Revenue      RevenueMetrics     `json:"revenue"`
	Performance  PerformanceMetrics `json:"performance"`
}

type AppointmentMetrics struct {
	Total     int   `json:"total"`
	Confirmed int   `json:"confirmed"`
	Pending   int   `json:"pending"`
	Cancelled int   `json:"cancelled"`
	Monthly   []int `json:"monthly"`
}

type PatientMetrics struct {
	Total        int          `json:"total"`
	New          int          `json:"new"`
	Returning    int          `json:"returning"`
	Demographics Demographics `json:"demographics"`
}

type Demographics struct {
	AgeGroups  []int `json:"ageGroups"`
	Gender     []int `json:"gender"`
	BloodTypes []int `json:"bloodTypes"`
}

type RevenueMetrics struct {
	Total    decimal.Decimal   `json:"total"`
	Monthly  []decimal.Decimal `json:"monthly"`
	Services []ServiceRevenue  `json:"services"`
}

type ServiceRevenue struct {
	Name       string          `json:"name"`
	Value      decimal.Decimal `json:"value"`
	Percentage decimal.Decimal `json:"percentage"`
}

type PerformanceMetrics struct {
	PatientSatisfaction   float64 `json:"patientSatisfaction"`
	WaitTime              int     `json:"waitTime"`
	AppointmentCompletion float64 `json:"appointmentCompletion"`
	DoctorEfficiency      float64 `json:"doctorEfficiency"`
}

type Insight struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
