package appointment

import (
	"context"
	"testing"
	"time"

	"medibook/models"
	"medibook/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func appt(id string, status models.AppointmentStatus, at time.Time) models.Appointment {
	return models.Appointment{ID: id, DoctorID: "d1", PatientID: "p1", Status: status, DateTime: at}
}

func TestBuildDashboardEmpty(t *testing.T) {
	dash := BuildDashboard("d1", nil, fixedNow, time.UTC)

	assert.Zero(t, dash.TotalAppointments)
	assert.Len(t, dash.StatusCounts, 4)
	assert.Len(t, dash.WeeklyAppointments, 7)
	assert.NotNil(t, dash.TodayAppointments)
	assert.Zero(t, dash.Analytics.CompletionRate)
	assert.Zero(t, dash.Analytics.AveragePerWeek)
}

func TestBuildDashboard(t *testing.T) {
	// fixedNow is Wednesday 2025-03-12 15:00 UTC; the ISO week starts Monday 2025-03-10.
	appts := []models.Appointment{
		appt("1", models.StatusCompleted, time.Date(2025, 2, 10, 9, 0, 0, 0, time.UTC)),
		appt("2", models.StatusCompleted, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)),
		appt("3", models.StatusPending, time.Date(2025, 3, 12, 16, 0, 0, 0, time.UTC)),
		appt("4", models.StatusConfirmed, time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)),
		appt("5", models.StatusCancelled, time.Date(2025, 3, 16, 10, 0, 0, 0, time.UTC)),
		appt("6", models.StatusPending, time.Date(2025, 3, 17, 10, 0, 0, 0, time.UTC)),
	}

	dash := BuildDashboard("d1", appts, fixedNow, time.UTC)

	assert.Equal(t, int64(6), dash.TotalAppointments)

	var sum int64
	for _, c := range dash.StatusCounts {
		sum += c
	}
	assert.Equal(t, dash.TotalAppointments, sum)
	assert.Equal(t, int64(2), dash.StatusCounts[models.StatusCompleted])
	assert.Equal(t, int64(2), dash.StatusCounts[models.StatusPending])

	require.Len(t, dash.TodayAppointments, 2)
	assert.Equal(t, "4", dash.TodayAppointments[0].ID)
	assert.Equal(t, "3", dash.TodayAppointments[1].ID)

	assert.Len(t, dash.WeeklyAppointments, 7)
	assert.Equal(t, int64(1), dash.WeeklyAppointments["MONDAY"])
	assert.Equal(t, int64(2), dash.WeeklyAppointments["WEDNESDAY"])
	assert.Equal(t, int64(1), dash.WeeklyAppointments["SUNDAY"])
	assert.Zero(t, dash.WeeklyAppointments["TUESDAY"])

	assert.Equal(t, 33.33, dash.Analytics.CompletionRate)
	// 30 days and 6 hours since 2025-02-10 09:00 -> 5 weeks.
	assert.Equal(t, 1.2, dash.Analytics.AveragePerWeek)
}

func TestBuildDashboardFutureOnly(t *testing.T) {
	appts := []models.Appointment{
		appt("1", models.StatusPending, fixedNow.Add(48*time.Hour)),
		appt("2", models.StatusPending, fixedNow.Add(72*time.Hour)),
	}
	dash := BuildDashboard("d1", appts, fixedNow, time.UTC)
	assert.Equal(t, 2.0, dash.Analytics.AveragePerWeek)
}

func TestBuildDashboardNormalizesStatuses(t *testing.T) {
	at := fixedNow.Add(time.Hour)
	appts := []models.Appointment{
		appt("1", models.StatusPending, at),
		appt("2", "pending", at),
		appt("3", "ARCHIVED", at),
	}

	dash := BuildDashboard("d1", appts, fixedNow, time.UTC)

	assert.Len(t, dash.StatusCounts, 4)
	assert.Equal(t, int64(2), dash.StatusCounts[models.StatusPending])
	assert.Equal(t, int64(2), dash.TotalAppointments)
	var sum int64
	for _, st := range models.AllAppointmentStatuses {
		sum += dash.StatusCounts[st]
	}
	assert.Equal(t, dash.TotalAppointments, sum)
	require.Len(t, dash.TodayAppointments, 2)
	assert.Equal(t, models.StatusPending, dash.TodayAppointments[1].Status)
}

func TestGetDoctorDashboardIsCached(t *testing.T) {
	repo := new(mockAppointmentRepo)
	svc, mr := newTestService(t, repo)
	repo.On("GetByDoctorID", mock.Anything, "d1").Return([]models.Appointment{
		appt("1", models.StatusCompleted, fixedNow.Add(-time.Hour)),
	}, nil).Once()

	first, err := svc.GetDoctorDashboard(context.Background(), "d1")
	require.NoError(t, err)
	assert.True(t, mr.Exists(utils.DashboardCachePrefix+"d1"))

	second, err := svc.GetDoctorDashboard(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, first.TotalAppointments, second.TotalAppointments)
	assert.Equal(t, first.StatusCounts, second.StatusCounts)
	repo.AssertNumberOfCalls(t, "GetByDoctorID", 1)
}
