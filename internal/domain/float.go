package domain

import "github.com/argo-float-service/internal/pkg/julian"

// FloatSummary - сводка по буй-платформе с приповерхностными значениями последнего профиля
type FloatSummary struct {
	ID                    string      `json:"id"`
	Latitude              float64     `json:"latitude"`
	Longitude             float64     `json:"longitude"`
	Temperature           *float64    `json:"temperature"`
	Salinity              *float64    `json:"salinity"`
	Depth                 *float64    `json:"depth"`
	LastUpdate            julian.Date `json:"lastUpdate"`
	DataCentre            string      `json:"dataCentre"`
	DataMode              string      `json:"dataMode"`
	Platform              string      `json:"platform"`
	ProjectName           string      `json:"projectName"`
	PrincipalInvestigator string      `json:"principalInvestigator"`
	Profiles              int64       `json:"profiles"`
}

// ProfileSummary - заголовок одного профиля (цикла) платформы
type ProfileSummary struct {
	ProfileID      int64       `json:"profileId"`
	PlatformNumber string      `json:"platformNumber"`
	CycleNumber    int64       `json:"cycleNumber"`
	Latitude       float64     `json:"latitude"`
	Longitude      float64     `json:"longitude"`
	Date           julian.Date `json:"date"`
	DataCenter     string      `json:"dataCenter"`
	DataMode       string      `json:"dataMode,omitempty"`
	PlatformType   string      `json:"platformType,omitempty"`
	ProjectName    string      `json:"projectName,omitempty"`
	PIName         string      `json:"piName,omitempty"`
	TempQC         string      `json:"profileTempQc,omitempty"`
	PsalQC         string      `json:"profilePsalQc,omitempty"`
	PresQC         string      `json:"profilePresQc,omitempty"`
}

// Measurement - измерение на одном уровне глубины
type Measurement struct {
	ProfileID        int64        `json:"profileId"`
	LevelIndex       int64        `json:"levelIndex"`
	Pressure         *float64     `json:"pressure"`
	Temperature      *float64     `json:"temperature"`
	Salinity         *float64     `json:"salinity"`
	TempQC           string       `json:"tempQc"`
	PsalQC           string       `json:"psalQc"`
	PresQC           string       `json:"presQc"`
	Quality          QualityFlags `json:"quality"`
	TemperatureError *float64     `json:"temperatureError,omitempty"`
	SalinityError    *float64     `json:"salinityError,omitempty"`
	PressureError    *float64     `json:"pressureError,omitempty"`
}

// FloatProfile - вертикальный профиль платформы
type FloatProfile struct {
	Depth        []float64      `json:"depth"`
	Temperature  []float64      `json:"temperature"`
	Salinity     []float64      `json:"salinity"`
	QualityFlags []QualityFlags `json:"qualityFlags"`
}

// Len возвращает количество уровней профиля
func (p FloatProfile) Len() int {
	return len(p.Depth)
}

// TimeSeriesPoint - приповерхностные средние значения одного цикла
type TimeSeriesPoint struct {
	Date        julian.Date `json:"date"`
	CycleNumber int64       `json:"cycleNumber"`
	Temperature *float64    `json:"temperature"`
	Salinity    *float64    `json:"salinity"`
}

// TrajectoryPoint - положение платформы в одном цикле
type TrajectoryPoint struct {
	Date        julian.Date `json:"date"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	Cycle       int64       `json:"cycle"`
	Temperature *float64    `json:"temperature"`
}

// NearestFloat - платформа рядом с точкой поиска
type NearestFloat struct {
	ID         string      `json:"id"`
	Latitude   float64     `json:"latitude"`
	Longitude  float64     `json:"longitude"`
	Cycle      int64       `json:"cycle"`
	LastSeen   julian.Date `json:"lastSeen"`
	DistanceKm float64     `json:"distanceKm"`
}

// Point возвращает положение платформы
func (f NearestFloat) Point() GeoPoint {
	return GeoPoint{Latitude: f.Latitude, Longitude: f.Longitude}
}
