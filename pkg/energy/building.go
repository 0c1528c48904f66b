package energy

import (
	"go.uber.org/zap"

	"energydata.io/building-energy-service/pkg/common"
	"energydata.io/building-energy-service/pkg/models"
)

func (e *Energy) createBuilding(input *models.BuildingCreate) (*models.Building, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEnergyCore,
		zap.String(common.LoggerFieldEnergyCategory, common.LoggerCategoryEnergyBuilding),
	)

	logger.Info("Received building", zap.Reflect("input", input))

	building := e.Store.CreateBuilding(input)

	logger.Info("Created building", zap.Reflect("building", building))

	return building, nil
}

func (e *Energy) getBuilding(buildingID string) (*models.Building, error) {
	return e.Store.GetBuilding(buildingID)
}

type IBuildingImpl struct {
	energy *Energy
}

func (ib *IBuildingImpl) CreateBuilding(input *models.BuildingCreate) (*models.Building, error) {
	return ib.energy.createBuilding(input)
}

func (ib *IBuildingImpl) GetBuilding(buildingID string) (*models.Building, error) {
	return ib.energy.getBuilding(buildingID)
}

func (e *Energy) GetIBuilding() IBuilding {
	return &IBuildingImpl{energy: e}
}
