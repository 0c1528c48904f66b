package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

var maxBuildings int = 1000
var readingsPerBuilding int = 5
var httpHostPort string = "127.0.0.1:9000"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

var buildingTypes = []string{"residential", "commercial", "industrial"}
var sourceTypes = []string{"solar", "grid", "battery"}

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/health", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	var startTime time.Time
	var usedTime time.Duration

	buildingIDs := make([]string, maxBuildings)

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxBuildings; i++ {
		i := i
		wg.Add(1)
		go func() {
			buildingIDs[i] = createBuilding(i)
			fmt.Printf("\rcreated building %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rcreated %v buildings: used time=%v seconds, throughput=%v action/second\n",
		maxBuildings, usedTime.Seconds(), float64(maxBuildings)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxBuildings; i++ {
		i := i
		wg.Add(1)
		go func() {
			pushReadings(buildingIDs[i])
			queryReadings(buildingIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	totalActions := maxBuildings * (readingsPerBuilding + 1)
	fmt.Printf(
		"\n\rdid actions for %v buildings: used time=%v seconds, throughput=%v action/second\n",
		maxBuildings, usedTime.Seconds(), float64(totalActions)/usedTime.Seconds(),
	)
}

func rndFloat64(min, max float64) float64 {
	return min + rnd.Float64()*(max-min)
}

func createBuilding(i int) string {
	body, _ := json.Marshal(map[string]string{
		"name":    fmt.Sprintf("Building %d", i),
		"address": fmt.Sprintf("%d Benchmark Street", i),
		"type":    buildingTypes[rnd.Intn(len(buildingTypes))],
	})

	resp, err := http.Post(
		fmt.Sprintf("http://%s/buildings", httpHostPort),
		"application/json",
		bytes.NewReader(body),
	)
	if err != nil {
		log.Fatal("Failed to create building:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		log.Fatalf("Unexpected status creating building: %v", resp.StatusCode)
	}

	var building struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&building); err != nil {
		log.Fatal("Failed to decode building response:", err)
	}
	return building.ID
}

func pushReadings(buildingID string) {
	base := time.Now().Add(-time.Duration(readingsPerBuilding) * time.Hour)
	for i := 0; i < readingsPerBuilding; i++ {
		body, _ := json.Marshal(map[string]any{
			"timestamp":       base.Add(time.Duration(i) * time.Hour).Format(time.RFC3339),
			"consumption_kwh": rndFloat64(0, 100),
			"source_type":     sourceTypes[rnd.Intn(len(sourceTypes))],
		})

		resp, err := http.Post(
			fmt.Sprintf("http://%s/buildings/%s/readings", httpHostPort, buildingID),
			"application/json",
			bytes.NewReader(body),
		)
		if err != nil {
			log.Fatal("Failed to add reading:", err)
		}
		resp.Body.Close()
	}
}

func queryReadings(buildingID string) {
	resp, err := http.Get(fmt.Sprintf(
		"http://%s/buildings/%s/readings?source_type=%s",
		httpHostPort, buildingID, sourceTypes[rnd.Intn(len(sourceTypes))],
	))
	if err != nil {
		log.Fatal("Failed to query readings:", err)
	}
	resp.Body.Close()
}
