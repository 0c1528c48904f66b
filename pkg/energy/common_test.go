package energy

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"go.uber.org/mock/gomock"

	"energydata.io/building-energy-service/pkg/energy/mocks"
	"energydata.io/building-energy-service/pkg/store"
)

func GetMockEnergyWithMemoryStore(t *testing.T, useMockIBuilding, useMockIReading bool) (
	*gomock.Controller,
	*Energy,
	*mocks.MockIBuilding,
	*mocks.MockIReading,
) {
	ctrl := gomock.NewController(t)

	mockIBuilding := mocks.NewMockIBuilding(ctrl)
	mockIReading := mocks.NewMockIReading(ctrl)
	energyInstance := &Energy{Store: store.New()}

	buildingService := energyInstance.GetIBuilding()
	if useMockIBuilding {
		buildingService = mockIBuilding
	}

	readingService := energyInstance.GetIReading()
	if useMockIReading {
		readingService = mockIReading
	}

	energyInstance.WithServices(ServiceOpts{
		Building: buildingService,
		Reading:  readingService,
	})

	return ctrl, energyInstance, mockIBuilding, mockIReading
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
