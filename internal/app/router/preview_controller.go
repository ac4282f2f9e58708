package router

import (
	"bufio"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/config"
	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/guide"
	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/pipeline"
)

// parseQuery parses the file named in the request with the matching adapter.
func parseQuery(c *gin.Context) ([]guide.RawAiring, bool) {
	file := c.Query("file")
	format := c.Query("format")
	if file == "" || format == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file and format query parameters are required"})
		return nil, false
	}

	adapter, err := pipeline.NewAdapter(config.Source{
		Format:    format,
		ChannelID: c.Query("channel"),
		Sheet:     c.Query("sheet"),
		Path:      file,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	airings, err := adapter.Parse(file)
	if err != nil {
		logger.Error("Preview parse failed.", zap.String("file", file), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return nil, false
	}
	return airings, true
}

// GetAirings returns the raw intermediate records of one guide file.
func GetAirings(c *gin.Context) {
	airings, ok := parseQuery(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, airings)
}

// GetSchedules returns the normalized submission payload of one guide file.
func GetSchedules(c *gin.Context) {
	airings, ok := parseQuery(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, guide.Normalize(airings, conf.NormalizeOptions()))
}

// GetLastRun returns the last line of the append-only run log.
func GetLastRun(c *gin.Context) {
	f, err := os.Open(conf.RunLogFile)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no runs recorded yet"})
		return
	}
	defer f.Close()

	var last string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			last = line
		}
	}
	if last == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "no runs recorded yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lastRun": last})
}
