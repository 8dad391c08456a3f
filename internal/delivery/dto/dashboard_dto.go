package dto

import "time"

type DashboardStats struct {
	TotalPatients       int `json:"totalPatients"`
	ActivePatients      int `json:"activePatients"`
	TotalAppointments   int `json:"totalAppointments"`
	PendingAppointments int `json:"pendingAppointments"`
	TeamMembers         int `json:"teamMembers"`
	TotalReports        int `json:"totalReports"`
	PendingReports      int `json:"pendingReports"`
}

type ActivityResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entityId,omitempty"`
	Actor     string    `json:"actor,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type DashboardResponse struct {
	Stats             DashboardStats        `json:"stats"`
	RecentActivities  []ActivityResponse    `json:"recentActivities"`
	TodayAppointments []AppointmentResponse `json:"todayAppointments"`
}
