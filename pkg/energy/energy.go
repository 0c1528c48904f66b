package energy

import (
	"energydata.io/building-energy-service/pkg/models"
	"energydata.io/building-energy-service/pkg/store"
)

type IBuilding interface {
	CreateBuilding(input *models.BuildingCreate) (*models.Building, error)
	GetBuilding(buildingID string) (*models.Building, error)
}

type IReading interface {
	AddReading(buildingID string, input *models.ReadingCreate) (*models.EnergyReading, error)
	GetReadings(buildingID string, query *models.ReadingQuery) ([]models.EnergyReading, error)
}

type Energy struct {
	Store    *store.Store
	Building IBuilding
	Reading  IReading
}

type ServiceOpts struct {
	Building IBuilding
	Reading  IReading
}

func (e *Energy) WithServices(opts ServiceOpts) *Energy {
	if opts.Building != nil {
		e.Building = opts.Building
	}
	if opts.Reading != nil {
		e.Reading = opts.Reading
	}
	return e
}
