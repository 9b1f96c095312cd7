package dto

import (
	"github.com/argo-float-service/internal/domain"
	"github.com/argo-float-service/internal/pkg/pagination"
)

// FloatSearchResponse - ответ на поиск буёв: страница сводок и статистика выборки
type FloatSearchResponse struct {
	Floats     pagination.Result[domain.FloatSummary] `json:"floats"`
	Statistics domain.DatasetStatistics               `json:"statistics"`
}

// ProfileListResponse - ответ на список профилей
type ProfileListResponse struct {
	Profiles         pagination.Result[domain.ProfileSummary] `json:"profiles"`
	MeasurementCount int64                                    `json:"measurementCount"`
}

// MeasurementsResponse - ответ на измерения профиля
type MeasurementsResponse struct {
	Profile      domain.ProfileSummary                 `json:"profile"`
	Measurements pagination.Result[domain.Measurement] `json:"measurements"`
}

// NearestFloatsResponse - ответ на поиск ближайших буёв
type NearestFloatsResponse struct {
	SearchLocation domain.GeoPoint       `json:"searchLocation"`
	MaxDistance    float64               `json:"maxDistance"`
	FloatsFound    int                   `json:"floatsFound"`
	Floats         []domain.NearestFloat `json:"floats"`
}

// NewNearestFloatsResponse собирает ответ; nil превращается в пустой список
func NewNearestFloatsResponse(req NearestFloatsRequest, floats []domain.NearestFloat) NearestFloatsResponse {
	if floats == nil {
		floats = []domain.NearestFloat{}
	}
	return NearestFloatsResponse{
		SearchLocation: req.Center(),
		MaxDistance:    req.MaxDistance,
		FloatsFound:    len(floats),
		Floats:         floats,
	}
}

// RegionComparisonResponse - ответ на сравнение регионов
type RegionComparisonResponse struct {
	Regions    []domain.RegionComparison       `json:"regions"`
	DateRange  domain.Option[domain.DateRange] `json:"dateRange"`
	DepthRange domain.Option[domain.Range]     `json:"depthRange"`
}

// FloatProfileResponse - вертикальный профиль платформы
type FloatProfileResponse struct {
	PlatformNumber string `json:"platformNumber"`
	Levels         int    `json:"levels"`
	domain.FloatProfile
}

// TimeSeriesResponse - временной ряд платформы
type TimeSeriesResponse struct {
	PlatformNumber string                   `json:"platformNumber"`
	Points         []domain.TimeSeriesPoint `json:"points"`
}

// TrajectoryResponse - траектория платформы
type TrajectoryResponse struct {
	PlatformNumber string                   `json:"platformNumber"`
	Points         []domain.TrajectoryPoint `json:"points"`
}

// QualityControlStatsResponse - распределение флагов качества
type QualityControlStatsResponse struct {
	Stats domain.QualityControlStats `json:"stats"`
	Total int64                      `json:"total"`
}

// NewQualityControlStatsResponse считает общий итог по всем параметрам
func NewQualityControlStatsResponse(stats domain.QualityControlStats) QualityControlStatsResponse {
	var total int64
	for _, levels := range stats {
		for _, n := range levels {
			total += n
		}
	}
	return QualityControlStatsResponse{Stats: stats, Total: total}
}
