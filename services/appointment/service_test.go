package appointment

import (
	"context"
	"strconv"
	"testing"
	"time"

	"medibook/database/repository"
	"medibook/models"
	"medibook/services/tasks"
	"medibook/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC) // Wednesday

func newTestService(t *testing.T, repo *mockAppointmentRepo) (*DefaultAppointmentService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return &DefaultAppointmentService{
		Repo:     repo,
		Redis:    rdb,
		Reminder: tasks.NoopReminder{},
		Location: time.UTC,
		CacheTTL: time.Minute,
		Now:      func() time.Time { return fixedNow },
		Logger:   zap.NewNop(),
	}, mr
}

func patient(id string) models.Caller {
	return models.Caller{ID: id, Roles: []models.Role{models.RolePatient}}
}

func doctorCaller(id string) models.Caller {
	return models.Caller{ID: id, Roles: []models.Role{models.RoleDoctor}}
}

func TestCreateAppointment(t *testing.T) {
	repo := new(mockAppointmentRepo)
	svc, _ := newTestService(t, repo)
	at := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	repo.On("ExistsActiveByDoctorIDAndDateTime", mock.Anything, "d1", at).Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return(nil)

	dto, err := svc.CreateAppointment(context.Background(), patient("p1"), models.CreateAppointmentRequest{
		DoctorID:    "d1",
		PatientID:   "someone-else",
		DateTime:    at,
		Description: "  checkup ",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, dto.ID)
	assert.Equal(t, "p1", dto.PatientID, "patients book for themselves")
	assert.Equal(t, models.StatusPending, dto.Status)
	assert.Equal(t, "checkup", dto.Description)
	repo.AssertExpectations(t)
}

func TestCreateAppointmentSlotTaken(t *testing.T) {
	repo := new(mockAppointmentRepo)
	svc, _ := newTestService(t, repo)
	at := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	repo.On("ExistsActiveByDoctorIDAndDateTime", mock.Anything, "d1", at).Return(true, nil)

	_, err := svc.CreateAppointment(context.Background(), patient("p1"), models.CreateAppointmentRequest{DoctorID: "d1", DateTime: at})
	assert.ErrorIs(t, err, ErrSlotTaken)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateAppointmentLockHeld(t *testing.T) {
	repo := new(mockAppointmentRepo)
	svc, mr := newTestService(t, repo)
	at := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	require.NoError(t, mr.Set(utils.SlotLockPrefix+"d1:"+itoa(at.Unix()), "other"))

	_, err := svc.CreateAppointment(context.Background(), patient("p1"), models.CreateAppointmentRequest{DoctorID: "d1", DateTime: at})
	assert.ErrorIs(t, err, ErrSlotTaken)
	repo.AssertNotCalled(t, "ExistsActiveByDoctorIDAndDateTime", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateAppointmentReleasesLock(t *testing.T) {
	repo := new(mockAppointmentRepo)
	svc, mr := newTestService(t, repo)
	at := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	repo.On("ExistsActiveByDoctorIDAndDateTime", mock.Anything, "d1", at).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.CreateAppointment(context.Background(), patient("p1"), models.CreateAppointmentRequest{DoctorID: "d1", DateTime: at})
	require.NoError(t, err)
	assert.False(t, mr.Exists(utils.SlotLockPrefix+"d1:"+itoa(at.Unix())))
}

func TestCreateAppointmentWithoutRedis(t *testing.T) {
	repo := new(mockAppointmentRepo)
	svc, _ := newTestService(t, repo)
	svc.Redis = nil
	at := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	repo.On("ExistsActiveByDoctorIDAndDateTime", mock.Anything, "d1", at).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.CreateAppointment(context.Background(), patient("p1"), models.CreateAppointmentRequest{DoctorID: "d1", DateTime: at})
	require.NoError(t, err)
}

func TestCreateAppointmentValidation(t *testing.T) {
	repo := new(mockAppointmentRepo)
	svc, _ := newTestService(t, repo)
	admin := models.Caller{ID: "admin", Roles: []models.Role{models.RoleAdmin}}

	_, err := svc.CreateAppointment(context.Background(), admin, models.CreateAppointmentRequest{DoctorID: "d1", DateTime: fixedNow})
	assert.ErrorIs(t, err, ErrInvalidInput, "admin must name the patient")

	_, err = svc.CreateAppointment(context.Background(), patient("p1"), models.CreateAppointmentRequest{DoctorID: "d1"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateAppointmentSchedulesReminder(t *testing.T) {
	repo := new(mockAppointmentRepo)
	reminder := new(mockReminder)
	svc, _ := newTestService(t, repo)
	svc.Reminder = reminder
	at := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	repo.On("ExistsActiveByDoctorIDAndDateTime", mock.Anything, "d1", at).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	reminder.On("Schedule", mock.Anything, mock.MatchedBy(func(a *models.Appointment) bool {
		return a.DoctorID == "d1" && a.DateTime.Equal(at)
	})).Return(nil)

	_, err := svc.CreateAppointment(context.Background(), patient("p1"), models.CreateAppointmentRequest{DoctorID: "d1", DateTime: at})
	require.NoError(t, err)
	reminder.AssertExpectations(t)
}

func TestUpdateStatus(t *testing.T) {
	repo := new(mockAppointmentRepo)
	svc, mr := newTestService(t, repo)
	require.NoError(t, mr.Set(utils.DashboardCachePrefix+"d1", "{}"))

	repo.On("GetByID", mock.Anything, "a1").Return(&models.Appointment{ID: "a1", DoctorID: "d1", Status: models.StatusPending}, nil)
	repo.On("UpdateStatus", mock.Anything, "a1", models.StatusConfirmed).Return(int64(1), nil)

	ok, err := svc.UpdateStatus(context.Background(), doctorCaller("d1"), "a1", "confirmed")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, mr.Exists(utils.DashboardCachePrefix+"d1"), "dashboard cache must be dropped")
}

func TestUpdateStatusUnknownID(t *testing.T) {
	repo := new(mockAppointmentRepo)
	svc, _ := newTestService(t, repo)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	ok, err := svc.UpdateStatus(context.Background(), doctorCaller("d1"), "missing", "COMPLETED")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateStatusInvalidName(t *testing.T) {
	repo := new(mockAppointmentRepo)
	svc, _ := newTestService(t, repo)

	ok, err := svc.UpdateStatus(context.Background(), doctorCaller("d1"), "a1", "ARCHIVED")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrInvalidStatus)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatusCancelDropsReminder(t *testing.T) {
	repo := new(mockAppointmentRepo)
	reminder := new(mockReminder)
	svc, _ := newTestService(t, repo)
	svc.Reminder = reminder

	repo.On("GetByID", mock.Anything, "a1").Return(&models.Appointment{ID: "a1", DoctorID: "d1", Status: models.StatusPending}, nil)
	repo.On("UpdateStatus", mock.Anything, "a1", models.StatusCancelled).Return(int64(1), nil)
	reminder.On("Cancel", mock.Anything, "a1").Return(nil)

	ok, err := svc.UpdateStatus(context.Background(), doctorCaller("d1"), "a1", "CANCELLED")
	require.NoError(t, err)
	assert.True(t, ok)
	reminder.AssertExpectations(t)
}

func TestUpdateStatusPermissions(t *testing.T) {
	booked := &models.Appointment{ID: "a1", DoctorID: "d1", PatientID: "p1", Status: models.StatusPending}
	admin := models.Caller{ID: "root", Roles: []models.Role{models.RoleAdmin}}

	tests := []struct {
		name    string
		caller  models.Caller
		status  string
		allowed bool
	}{
		{"doctor completes", doctorCaller("d1"), "COMPLETED", true},
		{"patient cancels", patient("p1"), "CANCELLED", true},
		{"patient cannot complete", patient("p1"), "COMPLETED", false},
		{"other patient", patient("p2"), "CANCELLED", false},
		{"other doctor", doctorCaller("d2"), "CONFIRMED", false},
		{"no roles", models.Caller{ID: "d1"}, "CONFIRMED", false},
		{"admin", admin, "CONFIRMED", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockAppointmentRepo)
			svc, _ := newTestService(t, repo)
			repo.On("GetByID", mock.Anything, "a1").Return(booked, nil)
			repo.On("UpdateStatus", mock.Anything, "a1", mock.Anything).Return(int64(1), nil)

			ok, err := svc.UpdateStatus(context.Background(), tt.caller, "a1", tt.status)
			if tt.allowed {
				require.NoError(t, err)
				assert.True(t, ok)
				return
			}
			assert.ErrorIs(t, err, ErrForbidden)
			assert.False(t, ok)
			repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateStatusReopenReschedulesReminder(t *testing.T) {
	repo := new(mockAppointmentRepo)
	reminder := new(mockReminder)
	svc, _ := newTestService(t, repo)
	svc.Reminder = reminder

	repo.On("GetByID", mock.Anything, "a1").Return(&models.Appointment{ID: "a1", DoctorID: "d1", Status: models.StatusCancelled}, nil)
	repo.On("UpdateStatus", mock.Anything, "a1", models.StatusConfirmed).Return(int64(1), nil)
	reminder.On("Schedule", mock.Anything, mock.MatchedBy(func(a *models.Appointment) bool {
		return a.ID == "a1" && a.Status == models.StatusConfirmed
	})).Return(nil)

	ok, err := svc.UpdateStatus(context.Background(), doctorCaller("d1"), "a1", "CONFIRMED")
	require.NoError(t, err)
	assert.True(t, ok)
	reminder.AssertExpectations(t)
	reminder.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything)
}

func TestGetTakenSlots(t *testing.T) {
	repo := new(mockAppointmentRepo)
	svc, _ := newTestService(t, repo)
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	repo.On("GetByDoctorIDAndDateTimeBetween", mock.Anything, "d1", day, day.AddDate(0, 0, 1)).Return([]models.Appointment{
		{ID: "b", DateTime: day.Add(14 * time.Hour), Status: models.StatusConfirmed},
		{ID: "a", DateTime: day.Add(9 * time.Hour), Status: models.StatusPending},
		{ID: "c", DateTime: day.Add(11*time.Hour + 30*time.Minute), Status: models.StatusCancelled},
	}, nil)

	slots, err := svc.GetTakenSlots(context.Background(), "d1", day.Add(13*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "14:00"}, slots)
}

func TestGetTakenSlotsEmpty(t *testing.T) {
	repo := new(mockAppointmentRepo)
	svc, _ := newTestService(t, repo)
	repo.On("GetByDoctorIDAndDateTimeBetween", mock.Anything, "d1", mock.Anything, mock.Anything).Return([]models.Appointment{}, nil)

	slots, err := svc.GetTakenSlots(context.Background(), "d1", fixedNow)
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestIsSlotAvailable(t *testing.T) {
	repo := new(mockAppointmentRepo)
	svc, _ := newTestService(t, repo)
	at := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	repo.On("ExistsActiveByDoctorIDAndDateTime", mock.Anything, "d1", at).Return(true, nil)

	free, err := svc.IsSlotAvailable(context.Background(), "d1", at)
	require.NoError(t, err)
	assert.False(t, free)
}

func TestAdminUpdateStatus(t *testing.T) {
	repo := new(mockAppointmentRepo)
	svc, _ := newTestService(t, repo)
	repo.On("GetByID", mock.Anything, "a1").Return(&models.Appointment{ID: "a1", DoctorID: "d1", Status: models.StatusPending}, nil)
	repo.On("UpdateStatus", mock.Anything, "a1", models.StatusCompleted).Return(int64(1), nil)

	dto, err := svc.AdminUpdateStatus(context.Background(), "a1", "COMPLETED")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, dto.Status)

	repo.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound)
	_, err = svc.AdminUpdateStatus(context.Background(), "missing", "COMPLETED")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	_, err = svc.AdminUpdateStatus(context.Background(), "a1", "nope")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGetAdminStats(t *testing.T) {
	repo := new(mockAppointmentRepo)
	svc, _ := newTestService(t, repo)
	repo.On("CountByStatus", mock.Anything, "").Return(map[models.AppointmentStatus]int64{
		models.StatusPending: 2, models.StatusConfirmed: 1, models.StatusCompleted: 4, models.StatusCancelled: 0,
	}, nil)
	repo.On("GetByDateTimeBetween", mock.Anything, mock.Anything, mock.Anything).Return([]models.Appointment{{ID: "x"}}, nil)

	stats, err := svc.GetAdminStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), stats.TotalAppointments)
	assert.Equal(t, int64(1), stats.TodayCount)
}

func TestGetByDateRangeRejectsInvertedRange(t *testing.T) {
	repo := new(mockAppointmentRepo)
	svc, _ := newTestService(t, repo)

	_, err := svc.GetByDateRange(context.Background(), fixedNow, fixedNow.Add(-time.Hour))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
