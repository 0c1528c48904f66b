package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"energydata.io/building-energy-service/pkg/energy"
)

type RestfulServer struct {
	Server           *gin.Engine
	Energy           *energy.Energy
	RateLimiterStore *energy.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(buildingID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(buildingID)
	}
}

func (rs *RestfulServer) CheckBuildingLimiter(buildingID string) bool {
	limiter := rs.GetLimiter(buildingID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(buildingID string, buildingRate float64, buildingBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(buildingID, rate.Limit(buildingRate), buildingBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/", rs.Home)
	rs.Server.GET("/health", rs.HealthCheck)

	rs.Server.POST("/buildings", rs.CreateBuilding)

	buildings := rs.Server.Group("/buildings/:building_id")
	{
		buildings.GET("", rs.GetBuilding)
		buildings.POST("/readings", rs.AddReading)
		buildings.GET("/readings", rs.GetReadings)
		buildings.POST("/limiter", rs.PostLimiter)
	}
}
