package cron

import (
	"medibook/utils"

	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// StartHealthMonitor refreshes the health snapshot served on /health. The first
// check runs immediately.
func StartHealthMonitor(spec string, rdb *redis.Client, mongoClient *mongo.Client, logger *zap.Logger) (*cron.Cron, error) {
	check := func() {
		status := utils.CheckHealth(rdb, mongoClient)
		if !status.Mongo || !status.Redis {
			logger.Warn("Dependency health check failed", zap.Bool("mongo", status.Mongo), zap.Bool("redis", status.Redis))
		}
	}

	c := cron.New()
	if _, err := c.AddFunc(spec, check); err != nil {
		return nil, err
	}
	check()
	c.Start()
	return c, nil
}
