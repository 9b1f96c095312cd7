package geo

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/argo-float-service/internal/domain"
	"github.com/argo-float-service/internal/query"
)

// EarthRadiusKm - средний радиус Земли
const EarthRadiusKm = 6371.0

// Колонки координат профиля
const (
	LatitudeColumn  = "p.latitude"
	LongitudeColumn = "p.longitude"
)

// degToRad - множитель перевода градусов в радианы. Литерал в экспоненциальной
// записи, чтобы движки читали его как float, а не DECIMAL.
var degToRad = strconv.FormatFloat(math.Pi/180, 'e', -1, 64)

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// HaversineDistanceKm вычисляет расстояние по большому кругу в километрах
// (сферическая теорема косинусов). Аргумент acos ограничен [-1, 1], иначе
// для почти совпадающих точек округление даёт NaN.
func HaversineDistanceKm(a, b domain.GeoPoint) float64 {
	if a == b {
		return 0
	}

	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	dLon := radians(b.Longitude - a.Longitude)

	cosAngle := math.Sin(lat1)*math.Sin(lat2) + math.Cos(lat1)*math.Cos(lat2)*math.Cos(dLon)
	cosAngle = math.Max(-1, math.Min(1, cosAngle))

	return EarthRadiusKm * math.Acos(cosAngle)
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// BoundingBoxPredicate возвращает два предиката по широте и долготе,
// параметры в порядке [minLat, maxLat, minLon, maxLon]
func BoundingBoxPredicate(box domain.BoundingBox) []query.Clause {
	return []query.Clause{
		query.Between(LatitudeColumn, box.MinLat, box.MaxLat),
		query.Between(LongitudeColumn, box.MinLon, box.MaxLon),
	}
}

// DistanceExpr возвращает SQL выражение расстояния (км) от center до точки
// в колонках latColumn/lonColumn. Параметры: [centerLat, centerLon, centerLat].
func DistanceExpr(center domain.GeoPoint, latColumn, lonColumn string) query.Clause {
	sql := fmt.Sprintf(
		"(%g * ACOS(LEAST(1.0, GREATEST(-1.0, "+
			"COS(? * %[2]s) * COS(%[3]s * %[2]s) * COS((%[4]s - ?) * %[2]s) + "+
			"SIN(? * %[2]s) * SIN(%[3]s * %[2]s)))))",
		EarthRadiusKm, degToRad, latColumn, lonColumn,
	)
	return query.New(sql, center.Latitude, center.Longitude, center.Latitude)
}

// RadiusPredicate возвращает предикат "расстояние <= radiusKm".
// centerLat передаётся дважды: в косинус и в синус.
func RadiusPredicate(center domain.GeoPoint, radiusKm float64) query.Clause {
	expr := DistanceExpr(center, LatitudeColumn, LongitudeColumn)
	return query.New(expr.SQL+" <= ?", append(expr.Args, radiusKm)...)
}

// Locatable - всё, у чего есть координаты
type Locatable interface {
	Point() domain.GeoPoint
}

// Ranked - кандидат с рассчитанным расстоянием
type Ranked[T any] struct {
	Item       T
	DistanceKm float64
}

// NearestWithinRadius оставляет кандидатов в радиусе, сортирует по возрастанию
// расстояния (при равенстве сохраняется входной порядок) и обрезает до limit.
// limit <= 0 означает "без ограничения".
func NearestWithinRadius[T Locatable](candidates []T, center domain.GeoPoint, radiusKm float64, limit int) []Ranked[T] {
	ranked := make([]Ranked[T], 0, len(candidates))
	for _, c := range candidates {
		d := HaversineDistanceKm(center, c.Point())
		if d <= radiusKm {
			ranked = append(ranked, Ranked[T]{Item: c, DistanceKm: d})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
