package utils

import "time"

// DashboardCachePrefix is the prefix used for cached doctor dashboards.
const DashboardCachePrefix = "dashboard:"

// SlotLockPrefix is the prefix for the short-lived booking lock on a doctor's slot.
const SlotLockPrefix = "slotlock:"

// SlotLockTTL bounds how long a booking may hold a slot lock.
const SlotLockTTL = 10 * time.Second

// Context keys set by the auth middleware.
const (
	CtxUserID    = "userID"
	CtxRoles     = "roles"
	CtxEmail     = "email"
	CtxAuthToken = "authToken"
)
