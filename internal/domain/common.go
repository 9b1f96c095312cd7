package domain

import (
	"encoding/json"
	"math"
	"time"
)

// GeoPoint - точка в десятичных градусах
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Point возвращает саму точку, чтобы GeoPoint можно было ранжировать напрямую
func (p GeoPoint) Point() GeoPoint {
	return p
}

// BoundingBox - прямоугольная область поиска
type BoundingBox struct {
	MinLat float64 `json:"minLat"`
	MaxLat float64 `json:"maxLat"`
	MinLon float64 `json:"minLon"`
	MaxLon float64 `json:"maxLon"`
}

// CircularRadius - круговая область поиска
type CircularRadius struct {
	CenterLat float64 `json:"centerLat"`
	CenterLon float64 `json:"centerLon"`
	RadiusKm  float64 `json:"radiusKm"`
}

// Center возвращает центр круга как GeoPoint
func (r CircularRadius) Center() GeoPoint {
	return GeoPoint{Latitude: r.CenterLat, Longitude: r.CenterLon}
}

// Range - числовой диапазон [Min, Max]. Бесконечная граница означает
// открытый диапазон: Min = -Inf - "не больше Max", Max = +Inf - "не меньше Min".
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// AtLeast - диапазон без верхней границы
func AtLeast(min float64) Range {
	return Range{Min: min, Max: math.Inf(1)}
}

// AtMost - диапазон без нижней границы
func AtMost(max float64) Range {
	return Range{Min: math.Inf(-1), Max: max}
}

// HasMin возвращает true, если нижняя граница задана
func (r Range) HasMin() bool {
	return !math.IsInf(r.Min, -1)
}

// HasMax возвращает true, если верхняя граница задана
func (r Range) HasMax() bool {
	return !math.IsInf(r.Max, 1)
}

// MarshalJSON кодирует открытую границу как null
func (r Range) MarshalJSON() ([]byte, error) {
	var out struct {
		Min *float64 `json:"min"`
		Max *float64 `json:"max"`
	}
	if r.HasMin() {
		out.Min = &r.Min
	}
	if r.HasMax() {
		out.Max = &r.Max
	}
	return json.Marshal(out)
}

// DateRange - временной диапазон, хотя бы одна граница задана
type DateRange struct {
	Start Option[time.Time] `json:"start"`
	End   Option[time.Time] `json:"end"`
}

// IsEmpty возвращает true, если не задана ни одна граница
func (r DateRange) IsEmpty() bool {
	return !r.Start.IsSet() && !r.End.IsSet()
}

// Row - строка, возвращённая хранилищем: имя колонки -> значение
type Row map[string]any
