package models

// DoctorDashboard is the doctor-facing aggregate over all of a doctor's appointments.
type DoctorDashboard struct {
	DoctorID           string                      `json:"doctorId"`
	TotalAppointments  int64                       `json:"totalAppointments"`
	StatusCounts       map[AppointmentStatus]int64 `json:"statusCounts"`
	TodayAppointments  []AppointmentDTO            `json:"todayAppointments"`
	WeeklyAppointments map[string]int64            `json:"weeklyAppointments"`
	Analytics          DashboardAnalytics          `json:"analytics"`
}

// DashboardAnalytics holds the derived rates.
type DashboardAnalytics struct {
	CompletionRate float64 `json:"completionRate"`
	AveragePerWeek float64 `json:"averagePerWeek"`
}

// AdminAppointmentStats is the platform-wide appointment overview.
type AdminAppointmentStats struct {
	TotalAppointments int64                       `json:"totalAppointments"`
	StatusCounts      map[AppointmentStatus]int64 `json:"statusCounts"`
	TodayCount        int64                       `json:"todayCount"`
}

// PlatformSummary counts users by role and doctors by account status.
type PlatformSummary struct {
	TotalUsers         int64          `json:"totalUsers"`
	UsersByRole        map[Role]int64 `json:"usersByRole"`
	ActiveDoctors      int64          `json:"activeDoctors"`
	IncompleteProfiles int64          `json:"incompleteProfiles"`
}

// ServiceStats counts healthcare services per category.
type ServiceStats struct {
	TotalServices int64            `json:"totalServices"`
	ByCategory    map[string]int64 `json:"byCategory"`
}
