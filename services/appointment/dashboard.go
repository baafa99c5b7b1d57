package appointment

import (
	"context"
	"math"
	"sort"
	"time"

	"medibook/models"
	"medibook/utils"
)

// GetDoctorDashboard aggregates all of a doctor's appointments.
func (s *DefaultAppointmentService) GetDoctorDashboard(ctx context.Context, doctorID string) (*models.DoctorDashboard, error) {
	if dash, ok := s.cachedDashboard(ctx, doctorID); ok {
		return dash, nil
	}

	appts, err := s.Repo.GetByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	dash := BuildDashboard(doctorID, appts, s.now(), s.loc())
	s.storeDashboard(ctx, dash)
	return dash, nil
}

// BuildDashboard computes the dashboard for appts as seen at now in loc.
// Statuses are matched case-insensitively; rows with an unknown status are
// left out entirely so the four counts always sum to the total.
func BuildDashboard(doctorID string, appts []models.Appointment, now time.Time, loc *time.Location) *models.DoctorDashboard {
	var total int64

	statusCounts := make(map[models.AppointmentStatus]int64, len(models.AllAppointmentStatuses))
	for _, st := range models.AllAppointmentStatuses {
		statusCounts[st] = 0
	}

	weekly := make(map[string]int64, len(models.WeekdayNames))
	for _, day := range models.WeekdayNames {
		weekly[day] = 0
	}

	todayStart, todayEnd := utils.DayBounds(now, loc)
	weekStart := utils.StartOfWeek(now, loc)
	weekEnd := weekStart.AddDate(0, 0, 7)

	today := make([]models.Appointment, 0)
	var earliest time.Time

	for _, a := range appts {
		status, err := models.ParseAppointmentStatus(string(a.Status))
		if err != nil {
			continue
		}
		a.Status = status
		total++
		statusCounts[status]++

		if inRange(a.DateTime, todayStart, todayEnd) {
			today = append(today, a)
		}
		if inRange(a.DateTime, weekStart, weekEnd) {
			weekly[models.WeekdayName(a.DateTime.In(loc).Weekday())]++
		}
		if earliest.IsZero() || a.DateTime.Before(earliest) {
			earliest = a.DateTime
		}
	}

	sort.SliceStable(today, func(i, j int) bool { return today[i].DateTime.Before(today[j].DateTime) })

	return &models.DoctorDashboard{
		DoctorID:           doctorID,
		TotalAppointments:  total,
		StatusCounts:       statusCounts,
		TodayAppointments:  models.AppointmentDTOs(today),
		WeeklyAppointments: weekly,
		Analytics: models.DashboardAnalytics{
			CompletionRate: completionRate(statusCounts[models.StatusCompleted], total),
			AveragePerWeek: averagePerWeek(total, earliest, now),
		},
	}
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

func completionRate(completed, total int64) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(completed) * 100 / float64(total))
}

// averagePerWeek spreads total over the weeks since the earliest appointment, at least one.
func averagePerWeek(total int64, earliest, now time.Time) float64 {
	if total == 0 {
		return 0
	}
	days := now.Sub(earliest).Hours() / 24
	weeks := math.Ceil(days / 7)
	if weeks < 1 {
		weeks = 1
	}
	return round2(float64(total) / weeks)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
