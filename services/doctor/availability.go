package doctor

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"medibook/database/repository"
	"medibook/models"
	"medibook/utils"

	"github.com/google/uuid"
)

func (s *DefaultDoctorService) AddAvailability(ctx context.Context, caller models.Caller, req models.AvailabilityRequest) (*models.DoctorAvailability, error) {
	if len(req.DaysOfWeek) == 0 {
		return nil, fmt.Errorf("%w: daysOfWeek is required", ErrInvalidInput)
	}
	seen := make(map[string]bool, len(req.DaysOfWeek))
	days := make([]string, 0, len(req.DaysOfWeek))
	for _, d := range req.DaysOfWeek {
		day, err := models.ParseWeekday(d)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}

	start, err := utils.ParseClock(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	end, err := utils.ParseClock(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if start >= end {
		return nil, fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	av := &models.DoctorAvailability{
		ID:         uuid.New().String(),
		DoctorID:   caller.ID,
		DaysOfWeek: days,
		StartTime:  utils.FormatClock(start),
		EndTime:    utils.FormatClock(end),
	}
	if err := s.Availability.Create(ctx, av); err != nil {
		return nil, err
	}
	return av, nil
}

func (s *DefaultDoctorService) GetAvailability(ctx context.Context, doctorID string) ([]models.DoctorAvailability, error) {
	return s.Availability.GetByDoctorID(ctx, doctorID)
}

func (s *DefaultDoctorService) DeleteAvailability(ctx context.Context, caller models.Caller, id string) error {
	av, err := s.Availability.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrAvailabilityNotFound
	}
	if err != nil {
		return err
	}
	if !canManage(caller, av.DoctorID) {
		return ErrForbidden
	}
	if err := s.Availability.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAvailabilityNotFound
		}
		return err
	}
	return nil
}

// GetFreeSlots walks the windows covering date's weekday in steps of
// durationMinutes, dropping slots that overlap a booking and already-past
// start times.
func (s *DefaultDoctorService) GetFreeSlots(ctx context.Context, doctorID string, date time.Time, durationMinutes int) (*models.SlotResponse, error) {
	if durationMinutes <= 0 {
		durationMinutes = s.SlotMinutes
	}
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	loc := s.Location
	if loc == nil {
		loc = time.UTC
	}
	day := utils.StartOfDay(date, loc)

	windows, err := s.Availability.GetByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	// Each booking holds one configured slot from its start time.
	bookedLen := s.SlotMinutes
	if bookedLen <= 0 {
		bookedLen = durationMinutes
	}
	var booked []int
	if s.Taken != nil {
		starts, err := s.Taken.GetTakenSlots(ctx, doctorID, day)
		if err != nil {
			return nil, err
		}
		for _, b := range starts {
			if m, err := utils.ParseClock(b); err == nil {
				booked = append(booked, m)
			}
		}
	}
	overlapsBooking := func(m int) bool {
		for _, b := range booked {
			if m < b+bookedLen && b < m+durationMinutes {
				return true
			}
		}
		return false
	}

	cutoff := -1
	if s.Now != nil {
		now := s.Now().In(loc)
		if utils.StartOfDay(now, loc).Equal(day) {
			cutoff = now.Hour()*60 + now.Minute()
		}
	}

	weekday := models.WeekdayName(day.Weekday())
	free := map[int]bool{}
	for i := range windows {
		w := &windows[i]
		if !w.CoversDay(weekday) {
			continue
		}
		start, err1 := utils.ParseClock(w.StartTime)
		end, err2 := utils.ParseClock(w.EndTime)
		if err1 != nil || err2 != nil {
			continue
		}
		for m := start; m+durationMinutes <= end; m += durationMinutes {
			if m <= cutoff || overlapsBooking(m) {
				continue
			}
			free[m] = true
		}
	}

	minutes := make([]int, 0, len(free))
	for m := range free {
		minutes = append(minutes, m)
	}
	sort.Ints(minutes)

	slots := make([]string, 0, len(minutes))
	for _, m := range minutes {
		slots = append(slots, utils.FormatClock(m))
	}
	return &models.SlotResponse{
		DoctorID:        doctorID,
		Date:            day.Format(utils.DateLayout),
		DurationMinutes: durationMinutes,
		Slots:           slots,
	}, nil
}
