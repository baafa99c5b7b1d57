package appointment

import (
	"context"
	"encoding/json"
	"errors"

	"medibook/models"
	"medibook/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func dashboardKey(doctorID string) string {
	return utils.DashboardCachePrefix + doctorID
}

func (s *DefaultAppointmentService) cachedDashboard(ctx context.Context, doctorID string) (*models.DoctorDashboard, bool) {
	if s.Redis == nil || s.CacheTTL <= 0 {
		return nil, false
	}
	raw, err := s.Redis.Get(ctx, dashboardKey(doctorID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.Logger.Warn("Dashboard cache read failed", zap.String("doctorId", doctorID), zap.Error(err))
		}
		return nil, false
	}
	var dash models.DoctorDashboard
	if err := json.Unmarshal(raw, &dash); err != nil {
		return nil, false
	}
	return &dash, true
}

func (s *DefaultAppointmentService) storeDashboard(ctx context.Context, dash *models.DoctorDashboard) {
	if s.Redis == nil || s.CacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(dash)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, dashboardKey(dash.DoctorID), raw, s.CacheTTL).Err(); err != nil {
		s.Logger.Warn("Dashboard cache write failed", zap.String("doctorId", dash.DoctorID), zap.Error(err))
	}
}

func (s *DefaultAppointmentService) invalidateDashboard(ctx context.Context, doctorID string) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, dashboardKey(doctorID)).Err(); err != nil {
		s.Logger.Warn("Dashboard cache invalidation failed", zap.String("doctorId", doctorID), zap.Error(err))
	}
}
