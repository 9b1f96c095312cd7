package dto

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cast"

	"github.com/argo-float-service/internal/domain"
	"github.com/argo-float-service/internal/pkg/errors"
	"github.com/argo-float-service/internal/pkg/pagination"
)

// Query - доступ к query-параметрам запроса по ключу (пустая строка - параметр не задан)
type Query func(key string) string

// Дефолты для полуоткрытых диапазонов измерений
var (
	DefaultTemperatureRange = domain.Range{Min: -10, Max: 40}
	DefaultSalinityRange    = domain.Range{Min: 0, Max: 50}
	DefaultDepthRange       = domain.Range{Min: 0, Max: 6000}
)

// Параметры поиска ближайших буёв
const (
	DefaultNearestDistanceKm = 500
	DefaultNearestLimit      = 10
	MaxNearestLimit          = 100
	DefaultCompareDepth      = "0-100"
)

// NearestFloatsRequest - запрос на поиск ближайших буёв
type NearestFloatsRequest struct {
	Lat         *float64 `query:"lat" validate:"required,min=-90,max=90"`
	Lon         *float64 `query:"lon" validate:"required,min=-180,max=180"`
	MaxDistance float64  `query:"maxDistance" validate:"gt=0,max=20040"`
	Limit       int      `query:"limit" validate:"min=1,max=100"`
}

// Center возвращает точку поиска
func (r NearestFloatsRequest) Center() domain.GeoPoint {
	return domain.GeoPoint{Latitude: lo.FromPtr(r.Lat), Longitude: lo.FromPtr(r.Lon)}
}

// ProfileMeasurementsRequest - запрос измерений одного профиля.
// Depth может быть открытым с одной стороны (minDepth или maxDepth).
type ProfileMeasurementsRequest struct {
	ProfileID      string `query:"id" validate:"required,max=20"`
	Depth          domain.Option[domain.Range]
	QualityControl domain.QCPolicy
	Page           pagination.Request
}

// CompareRegionsRequest - запрос сравнения океанских регионов
type CompareRegionsRequest struct {
	Keys      []string
	DateRange domain.Option[domain.DateRange]
	Depth     domain.Option[domain.Range]
}

// ParseFilter собирает FilterRequest из query-параметров.
// bbox задаётся только всеми четырьмя границами, радиус - всеми тремя параметрами;
// у полуоткрытых диапазонов измерений недостающая граница берётся из дефолтов,
// если это не переворачивает диапазон, иначе диапазон остаётся открытым.
func ParseFilter(q Query) (domain.FilterRequest, error) {
	var req domain.FilterRequest

	dr, err := ParseDateRange(q, "startDate", "endDate")
	if err != nil {
		return req, err
	}
	req.DateRange = dr

	box, err := floats(q, "minLat", "maxLat", "minLon", "maxLon")
	if err != nil {
		return req, err
	}
	if box != nil {
		req.Geospatial.BoundingBox = domain.Some(domain.BoundingBox{
			MinLat: box[0], MaxLat: box[1], MinLon: box[2], MaxLon: box[3],
		})
	}

	circle, err := floats(q, "centerLat", "centerLon", "radiusKm")
	if err != nil {
		return req, err
	}
	if circle != nil {
		req.Geospatial.Radius = domain.Some(domain.CircularRadius{
			CenterLat: circle[0], CenterLon: circle[1], RadiusKm: circle[2],
		})
	}

	if req.Measurements.Temperature, err = halfOpenRange(q, "minTemp", "maxTemp", DefaultTemperatureRange); err != nil {
		return req, err
	}
	if req.Measurements.Salinity, err = halfOpenRange(q, "minSalinity", "maxSalinity", DefaultSalinityRange); err != nil {
		return req, err
	}
	if req.Measurements.Depth, err = halfOpenRange(q, "minDepth", "maxDepth", DefaultDepthRange); err != nil {
		return req, err
	}

	req.Platform = domain.PlatformFilter{
		Numbers:     SplitList(q("platformNumbers")),
		DataCenter:  optString(q, "dataCenter"),
		ProjectName: optString(q, "projectName"),
		DataMode:    optString(q, "dataMode"),
	}

	req.QualityControl = ParseQCPolicy(q)

	return req, nil
}

// ParseQCPolicy: goodOnly имеет приоритет над includeQuestionable
func ParseQCPolicy(q Query) domain.QCPolicy {
	switch {
	case q("goodOnly") == "true":
		return domain.QCGoodOnly
	case q("includeQuestionable") == "true":
		return domain.QCIncludeQuestionable
	default:
		return domain.QCAny
	}
}

// ParsePage читает page/limit и применяет политику лимитов эндпоинта
func ParsePage(q Query, defaultLimit, maxLimit int) pagination.Request {
	page := cast.ToInt(strings.TrimSpace(q("page")))
	limit := cast.ToInt(strings.TrimSpace(q("limit")))
	return pagination.Clamp(page, limit, defaultLimit, maxLimit)
}

// ParseNearest читает параметры поиска ближайших буёв; валидация - через validator
func ParseNearest(q Query) (NearestFloatsRequest, error) {
	req := NearestFloatsRequest{MaxDistance: DefaultNearestDistanceKm, Limit: DefaultNearestLimit}

	var err error
	if req.Lat, err = optFloat(q, "lat"); err != nil {
		return req, err
	}
	if req.Lon, err = optFloat(q, "lon"); err != nil {
		return req, err
	}

	d, err := optFloat(q, "maxDistance")
	if err != nil {
		return req, err
	}
	if d != nil {
		req.MaxDistance = *d
	}

	if raw := strings.TrimSpace(q("limit")); raw != "" {
		limit, err := cast.ToIntE(raw)
		if err != nil {
			return req, errors.NewValidationError("limit", "must be an integer")
		}
		req.Limit = limit
	}

	return req, nil
}

// ParseMeasurements читает фильтры измерений профиля. Одна граница глубины
// даёт открытый диапазон, дефолты здесь не подставляются.
func ParseMeasurements(profileID string, q Query) (ProfileMeasurementsRequest, error) {
	req := ProfileMeasurementsRequest{
		ProfileID:      strings.TrimSpace(profileID),
		QualityControl: ParseQCPolicy(q),
		Page:           ParsePage(q, pagination.DefaultMeasurementLimit, pagination.MaxMeasurementLimit),
	}

	if _, err := ParseProfileID(req.ProfileID); err != nil {
		return req, err
	}

	depth, err := openRange(q, "minDepth", "maxDepth")
	if err != nil {
		return req, err
	}
	req.Depth = depth
	return req, nil
}

// ParseProfileID - идентификатор профиля: неотрицательное десятичное целое.
// Значение в текст ошибки не попадает.
func ParseProfileID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errors.NewParamError("id", "is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, errors.NewParamError("id", "must be a non-negative integer profile id")
	}
	return id, nil
}

// ParseCompareRegions читает список регионов, даты и диапазон глубин вида "0-100"
func ParseCompareRegions(q Query) (CompareRegionsRequest, error) {
	req := CompareRegionsRequest{Keys: SplitList(q("regions"))}
	if len(req.Keys) == 0 {
		req.Keys = domain.OceanRegionKeys()
	}

	dr, err := ParseDateRange(q, "startDate", "endDate")
	if err != nil {
		return req, err
	}
	req.DateRange = dr

	raw := strings.TrimSpace(q("depthRange"))
	if raw == "" {
		raw = DefaultCompareDepth
	}
	depth, err := ParseDepthRange(raw)
	if err != nil {
		return req, err
	}
	req.Depth = domain.Some(depth)

	return req, nil
}

// ParseDepthRange разбирает "min-max" или "min,max"; min может быть отрицательным ("-5-100")
func ParseDepthRange(raw string) (domain.Range, error) {
	minRaw, maxRaw, ok := splitRange(strings.TrimSpace(raw))
	if !ok {
		return domain.Range{}, errors.NewValidationError("depthRange", "expected min-max, got %q", raw)
	}
	minV, errMin := cast.ToFloat64E(strings.TrimSpace(minRaw))
	maxV, errMax := cast.ToFloat64E(strings.TrimSpace(maxRaw))
	if errMin != nil || errMax != nil {
		return domain.Range{}, errors.NewValidationError("depthRange", "expected min-max, got %q", raw)
	}
	return domain.Range{Min: minV, Max: maxV}, nil
}

// splitRange ищет разделитель: запятую или минус, который не является
// знаком числа (в начале, после другого минуса или в экспоненте)
func splitRange(raw string) (string, string, bool) {
	if minRaw, maxRaw, ok := strings.Cut(raw, ","); ok {
		return minRaw, maxRaw, true
	}
	for i := 1; i < len(raw); i++ {
		if raw[i] != '-' {
			continue
		}
		switch raw[i-1] {
		case '-', 'e', 'E':
			continue
		}
		return raw[:i], raw[i+1:], true
	}
	return "", "", false
}

// ParseDateRange возвращает диапазон, если задана хотя бы одна граница
func ParseDateRange(q Query, startKey, endKey string) (domain.Option[domain.DateRange], error) {
	var dr domain.DateRange

	for _, b := range []struct {
		key    string
		target *domain.Option[time.Time]
	}{
		{startKey, &dr.Start},
		{endKey, &dr.End},
	} {
		raw := strings.TrimSpace(q(b.key))
		if raw == "" {
			continue
		}
		t, err := ParseDate(raw)
		if err != nil {
			return domain.None[domain.DateRange](), errors.NewValidationError(b.key, "expected RFC 3339 or YYYY-MM-DD, got %q", raw)
		}
		*b.target = domain.Some(t)
	}

	if dr.IsEmpty() {
		return domain.None[domain.DateRange](), nil
	}
	return domain.Some(dr), nil
}

// ParseDate принимает RFC 3339 или YYYY-MM-DD (полночь UTC)
func ParseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Parse("2006-01-02", raw)
}

// SplitList разбивает список через запятую, убирая пробелы, пустые значения и дубликаты
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := lo.Map(strings.Split(raw, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	})
	return lo.Uniq(lo.Compact(parts))
}

func optString(q Query, key string) domain.Option[string] {
	if v := strings.TrimSpace(q(key)); v != "" {
		return domain.Some(v)
	}
	return domain.None[string]()
}

func optFloat(q Query, key string) (*float64, error) {
	raw := strings.TrimSpace(q(key))
	if raw == "" {
		return nil, nil
	}
	v, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, errors.NewValidationError(key, "must be a number, got %q", raw)
	}
	return &v, nil
}

// floats возвращает значения всех ключей или nil, если хотя бы один не задан
func floats(q Query, keys ...string) ([]float64, error) {
	values := make([]float64, 0, len(keys))
	for _, key := range keys {
		v, err := optFloat(q, key)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, nil
		}
		values = append(values, *v)
	}
	return values, nil
}

// openRange: обе границы - закрытый диапазон, одна - открытый, ни одной - None
func openRange(q Query, minKey, maxKey string) (domain.Option[domain.Range], error) {
	minV, err := optFloat(q, minKey)
	if err != nil {
		return domain.None[domain.Range](), err
	}
	maxV, err := optFloat(q, maxKey)
	if err != nil {
		return domain.None[domain.Range](), err
	}

	switch {
	case minV != nil && maxV != nil:
		return domain.Some(domain.Range{Min: *minV, Max: *maxV}), nil
	case minV != nil:
		return domain.Some(domain.AtLeast(*minV)), nil
	case maxV != nil:
		return domain.Some(domain.AtMost(*maxV)), nil
	default:
		return domain.None[domain.Range](), nil
	}
}

// halfOpenRange дополняет открытую сторону дефолтом, если граница за дефолт не выходит
func halfOpenRange(q Query, minKey, maxKey string, defaults domain.Range) (domain.Option[domain.Range], error) {
	opt, err := openRange(q, minKey, maxKey)
	if err != nil {
		return opt, err
	}
	r, ok := opt.Get()
	if !ok {
		return opt, nil
	}

	if !r.HasMax() && r.Min <= defaults.Max {
		r.Max = defaults.Max
	}
	if !r.HasMin() && r.Max >= defaults.Min {
		r.Min = defaults.Min
	}
	return domain.Some(r), nil
}
