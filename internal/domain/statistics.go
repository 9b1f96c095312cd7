package domain

// DatasetStatistics - общая статистика по отфильтрованной выборке
type DatasetStatistics struct {
	Total              int64    `json:"total"`
	Profiles           int64    `json:"profiles"`
	Measurements       int64    `json:"measurements"`
	AverageTemperature *float64 `json:"averageTemperature"`
	AverageSalinity    *float64 `json:"averageSalinity"`
	DataCenters        int64    `json:"dataCenters"`
	PlatformTypes      int64    `json:"platformTypes"`
}

// ParameterStats - min/max/avg/stddev одного параметра
type ParameterStats struct {
	Avg    *float64 `json:"avg"`
	Min    *float64 `json:"min"`
	Max    *float64 `json:"max"`
	StdDev *float64 `json:"stdDev"`
}

// RegionalStatistics - агрегаты по региону
type RegionalStatistics struct {
	FloatCount       int64          `json:"floatCount"`
	ProfileCount     int64          `json:"profileCount"`
	MeasurementCount int64          `json:"measurementCount"`
	Temperature      ParameterStats `json:"temperature"`
	Salinity         ParameterStats `json:"salinity"`
}

// RegionComparison - статистика одного предопределённого региона
type RegionComparison struct {
	Key    string      `json:"key"`
	Region string      `json:"region"`
	Bounds BoundingBox `json:"bounds"`
	RegionalStatistics
}

// QualityControlStats - количество измерений по параметру и уровню качества,
// например stats["temperature"][QualityGood]
type QualityControlStats map[string]map[QualityLevel]int64

// Add увеличивает счётчик параметра для уровня
func (s QualityControlStats) Add(parameter string, level QualityLevel, count int64) {
	if s[parameter] == nil {
		s[parameter] = make(map[QualityLevel]int64)
	}
	s[parameter][level] += count
}
