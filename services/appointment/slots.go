package appointment

import (
	"context"
	"sort"
	"time"

	"medibook/models"
	"medibook/utils"
)

// GetTakenSlots returns the HH:mm start times of the doctor's non-cancelled
// appointments on date, ascending. The result is never nil.
func (s *DefaultAppointmentService) GetTakenSlots(ctx context.Context, doctorID string, date time.Time) ([]string, error) {
	start, end := utils.DayBounds(date, s.loc())
	appts, err := s.Repo.GetByDoctorIDAndDateTimeBetween(ctx, doctorID, start, end)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(appts, func(i, j int) bool { return appts[i].DateTime.Before(appts[j].DateTime) })

	slots := make([]string, 0, len(appts))
	for _, a := range appts {
		if a.Status == models.StatusCancelled {
			continue
		}
		slots = append(slots, a.DateTime.In(s.loc()).Format(utils.ClockLayout))
	}
	return slots, nil
}

// IsSlotAvailable reports whether no active appointment holds the exact dateTime.
func (s *DefaultAppointmentService) IsSlotAvailable(ctx context.Context, doctorID string, dateTime time.Time) (bool, error) {
	taken, err := s.Repo.ExistsActiveByDoctorIDAndDateTime(ctx, doctorID, dateTime.UTC())
	if err != nil {
		return false, err
	}
	return !taken, nil
}
