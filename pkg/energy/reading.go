package energy

import (
	"go.uber.org/zap"

	"energydata.io/building-energy-service/pkg/common"
	"energydata.io/building-energy-service/pkg/models"
)

func (e *Energy) addReading(buildingID string, input *models.ReadingCreate) (*models.EnergyReading, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEnergyCore,
		zap.String(common.LoggerFieldEnergyCategory, common.LoggerCategoryEnergyReading),
	)

	logger.Info("Received reading for building",
		zap.String("building_id", buildingID), zap.Reflect("input", input))

	reading, err := e.Store.AddReading(buildingID, input)
	if err != nil {
		return nil, err
	}

	logger.Info("Stored reading for building", zap.Reflect("reading", reading))

	return reading, nil
}

func (e *Energy) getReadings(buildingID string, query *models.ReadingQuery) ([]models.EnergyReading, error) {
	return e.Store.GetReadings(buildingID, query)
}

type IReadingImpl struct {
	energy *Energy
}

func (ir *IReadingImpl) AddReading(buildingID string, input *models.ReadingCreate) (*models.EnergyReading, error) {
	return ir.energy.addReading(buildingID, input)
}

func (ir *IReadingImpl) GetReadings(buildingID string, query *models.ReadingQuery) ([]models.EnergyReading, error) {
	return ir.energy.getReadings(buildingID, query)
}

func (e *Energy) GetIReading() IReading {
	return &IReadingImpl{energy: e}
}
