package models

import (
	"fmt"
	"strings"
	"time"
)

// Weekday names as stored and transmitted.
var WeekdayNames = []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"}

// WeekdayName returns the upper-case name of d.
func WeekdayName(d time.Weekday) string {
	return WeekdayNames[(int(d)+6)%7]
}

// ParseWeekday normalizes a weekday name.
func ParseWeekday(s string) (string, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, w := range WeekdayNames {
		if w == name {
			return w, nil
		}
	}
	return "", fmt.Errorf("invalid day of week %q", s)
}

// DoctorAvailability is a recurring weekly availability window.
type DoctorAvailability struct {
	ID         string    `bson:"id" json:"id"`
	DoctorID   string    `bson:"doctorId" json:"doctorId"`
	DaysOfWeek []string  `bson:"daysOfWeek" json:"daysOfWeek"`
	StartTime  string    `bson:"startTime" json:"startTime"`
	EndTime    string    `bson:"endTime" json:"endTime"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CoversDay reports whether the window applies on the given weekday name.
func (a *DoctorAvailability) CoversDay(day string) bool {
	for _, d := range a.DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

// AvailabilityRequest creates an availability window.
type AvailabilityRequest struct {
	DaysOfWeek []string `json:"daysOfWeek" binding:"required"`
	StartTime  string   `json:"startTime" binding:"required"`
	EndTime    string   `json:"endTime" binding:"required"`
}

// SlotResponse lists free booking times for a doctor on a date.
type SlotResponse struct {
	DoctorID        string   `json:"doctorId"`
	Date            string   `json:"date"`
	DurationMinutes int      `json:"durationMinutes"`
	Slots           []string `json:"slots"`
}
