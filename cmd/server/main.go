package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"energydata.io/building-energy-service/pkg/common"
	"energydata.io/building-energy-service/pkg/energy"
	energyHttp "energydata.io/building-energy-service/pkg/http"
	"energydata.io/building-energy-service/pkg/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	logger := common.GetLogger()

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyEnergyHttpHostPort))
	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":9000"
	}

	// limiting is optional: with no default rate/burst configured every
	// request goes straight through
	var limiterStore *energy.RateLimiterStore
	rateStr := strings.TrimSpace(os.Getenv(common.EnvKeyEnergyDefaultRate))
	burstStr := strings.TrimSpace(os.Getenv(common.EnvKeyEnergyDefaultBurst))
	if rateStr != "" || burstStr != "" {
		defaultRate, err := strconv.ParseFloat(rateStr, 64)
		if err != nil {
			log.Fatal("Invalid ENERGY_DEFAULT_RATE, should be a float64 value")
		}

		defaultBurst, err := strconv.ParseInt(burstStr, 10, 64)
		if err != nil {
			log.Fatal("Invalid ENERGY_DEFAULT_BURST, should be an int value")
		}

		limiterStore = energy.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst))

		logger.Info("per-building rate limiting enabled",
			zap.String("default_limiter",
				fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))
	}

	energyCore := energy.Energy{
		Store: store.New(),
	}
	energyCore.WithServices(energy.ServiceOpts{
		Building: energyCore.GetIBuilding(),
		Reading:  energyCore.GetIReading(),
	})

	if common.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rs := &energyHttp.RestfulServer{
		Server:           gin.Default(),
		Energy:           &energyCore,
		RateLimiterStore: limiterStore,
	}
	rs.Setup()

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
