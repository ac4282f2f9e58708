// Package router exposes a read-only preview HTTP surface: it parses and
// normalizes local guide files on demand without submitting anything.
package router

import (
	"net/http"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/config"
)

var (
	logger *zap.Logger

	conf *config.Config
)

func NewEngine(c *config.Config) *gin.Engine {
	logger = zap.L()
	conf = c

	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(ginzap.Ginzap(logger, "", false))
	r.Use(ginzap.RecoveryWithZap(logger, true))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// parsed intermediate records of one file
	r.GET("/preview/airings", GetAirings)
	// normalized submission payload of one file
	r.GET("/preview/schedules", GetSchedules)
	// outcome line of the most recent run
	r.GET("/runs/last", GetLastRun)

	return r
}
