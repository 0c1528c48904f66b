package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"energydata.io/building-energy-service/pkg/models"
	"energydata.io/building-energy-service/pkg/store"
)

// writeStorageError is the single translation point from storage error
// discriminants to HTTP statuses.
func writeStorageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrBuildingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrDuplicateReading):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// parseISODate accepts the ISO-8601 spellings callers actually send: full
// RFC3339, a zoneless datetime, or a bare date.
func parseISODate(raw string) (time.Time, error) {
	layouts := []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}
	var err error
	for _, layout := range layouts {
		var ts time.Time
		if ts, err = time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, err
}

type BuildingRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Type    string `json:"type"`
}

var buildingRequestSchema = z.Struct(z.Shape{
	"Name":    z.String().Required(),
	"Address": z.String().Required(),
	"Type":    z.String().Required(),
})

func (rs *RestfulServer) CreateBuilding(c *gin.Context) {
	var req BuildingRequest

	if err := buildingRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	buildingType := models.BuildingType(req.Type)
	if !buildingType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be one of: residential, commercial, industrial"})
		return
	}

	building, err := rs.Energy.Building.CreateBuilding(&models.BuildingCreate{
		Name:    req.Name,
		Address: req.Address,
		Type:    buildingType,
	})
	if err != nil {
		writeStorageError(c, err)
		return
	}

	c.JSON(http.StatusCreated, building)
}

func (rs *RestfulServer) GetBuilding(c *gin.Context) {
	buildingID := c.Param("building_id")

	if !rs.CheckBuildingLimiter(buildingID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	building, err := rs.Energy.Building.GetBuilding(buildingID)
	if err != nil {
		writeStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, building)
}

type ReadingRequest struct {
	Timestamp      time.Time `json:"timestamp"`
	ConsumptionKWH float64   `json:"consumption_kwh"`
	SourceType     string    `json:"source_type"`
}

var readingRequestSchema = z.Struct(z.Shape{
	"Timestamp":      z.Time().Required(),
	"ConsumptionKWH": z.Float64().GTE(0),
	"SourceType":     z.String().Required(),
})

func (rs *RestfulServer) AddReading(c *gin.Context) {
	buildingID := c.Param("building_id")

	if !rs.CheckBuildingLimiter(buildingID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req ReadingRequest
	if err := readingRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	sourceType := models.SourceType(req.SourceType)
	if !sourceType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "source_type must be one of: solar, grid, battery"})
		return
	}

	reading, err := rs.Energy.Reading.AddReading(buildingID, &models.ReadingCreate{
		Timestamp:      req.Timestamp,
		ConsumptionKWH: req.ConsumptionKWH,
		SourceType:     sourceType,
	})
	if err != nil {
		writeStorageError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reading)
}

type ReadingsResponse struct {
	Readings       []models.EnergyReading `json:"readings"`
	TotalCount     int                    `json:"total_count"`
	FiltersApplied map[string]string      `json:"filters_applied"`
}

func (rs *RestfulServer) GetReadings(c *gin.Context) {
	buildingID := c.Param("building_id")

	if !rs.CheckBuildingLimiter(buildingID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	query := &models.ReadingQuery{}
	// echoes back exactly the raw query values the caller supplied
	filtersApplied := map[string]string{}

	if raw := c.Query("start_date"); raw != "" {
		ts, err := parseISODate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date format: " + raw})
			return
		}
		query.StartDate = &ts
		filtersApplied["start_date"] = raw
	}

	if raw := c.Query("end_date"); raw != "" {
		ts, err := parseISODate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date format: " + raw})
			return
		}
		query.EndDate = &ts
		filtersApplied["end_date"] = raw
	}

	if raw := c.Query("source_type"); raw != "" {
		sourceType := models.SourceType(raw)
		if !sourceType.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "source_type must be one of: solar, grid, battery"})
			return
		}
		query.SourceType = &sourceType
		filtersApplied["source_type"] = raw
	}

	readings, err := rs.Energy.Reading.GetReadings(buildingID, query)
	if err != nil {
		writeStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, ReadingsResponse{
		Readings:       readings,
		TotalCount:     len(readings),
		FiltersApplied: filtersApplied,
	})
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	buildingID := c.Param("building_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(buildingID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Building Energy API is working!"})
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK", "time": time.Now().UTC().Format(time.RFC3339)})
}
