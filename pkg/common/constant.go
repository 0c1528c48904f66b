package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyEnergyHttpHostPort string = "ENERGY_HTTP_HOST_PORT"

	EnvKeyEnergyDefaultRate  string = "ENERGY_DEFAULT_RATE"
	EnvKeyEnergyDefaultBurst string = "ENERGY_DEFAULT_BURST"

	LoggerNameEnergyCore    string = "energy_core"
	LoggerNameRestfulServer string = "restful_server"

	LoggerFieldEnergyCategory    string = "category"
	LoggerCategoryEnergyBuilding string = "building"
	LoggerCategoryEnergyReading  string = "reading"
)
