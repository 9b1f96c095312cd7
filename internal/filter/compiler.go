// Package filter compiles a domain.FilterRequest into ordered SQL clauses.
package filter

import (
	"math"
	"strings"

	"github.com/samber/lo"

	"github.com/argo-float-service/internal/domain"
	"github.com/argo-float-service/internal/geo"
	"github.com/argo-float-service/internal/pkg/errors"
	"github.com/argo-float-service/internal/pkg/julian"
	"github.com/argo-float-service/internal/query"
)

// Колонки хранилища, на которые ссылаются предикаты
const (
	ColumnJuld           = "p.juld"
	ColumnPlatformNumber = "p.platform_number"
	ColumnDataCentre     = "p.data_centre"
	ColumnProjectName    = "p.project_name"
	ColumnDataMode       = "p.data_mode"
	ColumnTemperature    = "m.temp_adjusted"
	ColumnSalinity       = "m.psal_adjusted"
	ColumnPressure       = "m.pres_adjusted"
	ColumnTempQC         = "m.temp_qc"
	ColumnPsalQC         = "m.psal_qc"
	ColumnPresQC         = "m.pres_qc"
)

// Имена полей для ValidationError
const (
	FieldDateRange        = "dateRange"
	FieldTemperatureRange = "temperatureRange"
	FieldSalinityRange    = "salinityRange"
	FieldDepthRange       = "depthRange"
	FieldBoundingBox      = "boundingBox"
	FieldCircularRadius   = "circularRadius"
)

var qcColumns = []string{ColumnTempQC, ColumnPsalQC, ColumnPresQC}

// Compile проверяет запрос и возвращает клаузы в фиксированном порядке:
// даты, bbox, радиус, температура, солёность, глубина, платформы,
// data centre, project, data mode, QC. Отсутствующий под-фильтр ничего не добавляет.
func Compile(req domain.FilterRequest) ([]query.Clause, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	var clauses []query.Clause

	if dr, ok := req.DateRange.Get(); ok {
		clauses = append(clauses, dateClause(dr)...)
	}

	if box, ok := req.Geospatial.BoundingBox.Get(); ok {
		clauses = append(clauses, geo.BoundingBoxPredicate(box)...)
	}

	if r, ok := req.Geospatial.Radius.Get(); ok {
		clauses = append(clauses, geo.RadiusPredicate(r.Center(), r.RadiusKm))
	}

	m := req.Measurements
	for _, rc := range []struct {
		column string
		rng    domain.Option[domain.Range]
	}{
		{ColumnTemperature, m.Temperature},
		{ColumnSalinity, m.Salinity},
		{ColumnPressure, m.Depth},
	} {
		if r, ok := rc.rng.Get(); ok {
			clauses = append(clauses, RangeClause(rc.column, r))
		}
	}

	if numbers := PlatformSet(req.Platform.Numbers); len(numbers) > 0 {
		clauses = append(clauses, query.In(ColumnPlatformNumber, numbers))
	}

	for _, eq := range []struct {
		column string
		value  domain.Option[string]
	}{
		{ColumnDataCentre, req.Platform.DataCenter},
		{ColumnProjectName, req.Platform.ProjectName},
		{ColumnDataMode, req.Platform.DataMode},
	} {
		if v, ok := eq.value.Get(); ok {
			clauses = append(clauses, query.Eq(eq.column, v))
		}
	}

	clauses = append(clauses, qcClauses(req.QualityControl)...)

	return clauses, nil
}

// RequiresMeasurements возвращает true, если скомпилированные клаузы ссылаются на m.*
func RequiresMeasurements(req domain.FilterRequest) bool {
	return req.TouchesMeasurements()
}

// PlatformSet убирает пустые значения и дубликаты, сохраняя первое вхождение
func PlatformSet(numbers []string) []string {
	trimmed := lo.Map(numbers, func(n string, _ int) string {
		return strings.TrimSpace(n)
	})
	return lo.Uniq(lo.Compact(trimmed))
}

// RangeClause - BETWEEN для закрытого диапазона, >= или <= для открытого
func RangeClause(column string, r domain.Range) query.Clause {
	switch {
	case r.HasMin() && r.HasMax():
		return query.Between(column, r.Min, r.Max)
	case r.HasMin():
		return query.New(column+" >= ?", r.Min)
	default:
		return query.New(column+" <= ?", r.Max)
	}
}

func dateClause(dr domain.DateRange) []query.Clause {
	start, hasStart := dr.Start.Get()
	end, hasEnd := dr.End.Get()

	switch {
	case hasStart && hasEnd:
		return []query.Clause{query.Between(ColumnJuld, julian.ToDayOffset(start), julian.ToDayOffset(end))}
	case hasStart:
		return []query.Clause{query.New(ColumnJuld+" >= ?", julian.ToDayOffset(start))}
	case hasEnd:
		return []query.Clause{query.New(ColumnJuld+" <= ?", julian.ToDayOffset(end))}
	default:
		return nil
	}
}

func qcClauses(policy domain.QCPolicy) []query.Clause {
	var codes []string
	switch policy {
	case domain.QCGoodOnly:
		codes = domain.QCCodes(domain.QualityGood)
	case domain.QCIncludeQuestionable:
		codes = domain.QCCodes(domain.QualityGood, domain.QualityQuestionable)
	default:
		return nil
	}

	clauses := make([]query.Clause, 0, len(qcColumns))
	for _, column := range qcColumns {
		var match query.Clause
		if len(codes) == 1 {
			match = query.Eq(column, codes[0])
		} else {
			match = query.In(column, codes)
		}
		clauses = append(clauses, query.New("("+match.SQL+" OR "+column+" IS NULL)", match.Args...))
	}
	return clauses
}

// Validate проверяет инварианты запроса. Границы никогда не переставляются.
func Validate(req domain.FilterRequest) error {
	if dr, ok := req.DateRange.Get(); ok {
		if dr.IsEmpty() {
			return errors.NewValidationError(FieldDateRange, "at least one bound is required")
		}
		start, hasStart := dr.Start.Get()
		end, hasEnd := dr.End.Get()
		if hasStart && hasEnd && start.After(end) {
			return errors.NewValidationError(FieldDateRange, "start %s is after end %s",
				start.Format("2006-01-02"), end.Format("2006-01-02"))
		}
	}

	if box, ok := req.Geospatial.BoundingBox.Get(); ok {
		if err := validateBoundingBox(box); err != nil {
			return err
		}
	}

	if r, ok := req.Geospatial.Radius.Get(); ok {
		if err := validateRadius(r); err != nil {
			return err
		}
	}

	m := req.Measurements
	for _, rc := range []struct {
		field string
		rng   domain.Option[domain.Range]
	}{
		{FieldTemperatureRange, m.Temperature},
		{FieldSalinityRange, m.Salinity},
		{FieldDepthRange, m.Depth},
	} {
		if r, ok := rc.rng.Get(); ok {
			if err := validateRange(rc.field, r); err != nil {
				return err
			}
		}
	}

	return nil
}

func validateRange(field string, r domain.Range) error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 1) || math.IsInf(r.Max, -1) {
		return errors.NewValidationError(field, "bounds must be finite numbers")
	}
	if !r.HasMin() && !r.HasMax() {
		return errors.NewValidationError(field, "at least one bound is required")
	}
	if r.Min > r.Max {
		return errors.NewValidationError(field, "min %v is greater than max %v", r.Min, r.Max)
	}
	return nil
}

func validateBoundingBox(box domain.BoundingBox) error {
	for _, c := range []struct {
		name  string
		value float64
		limit float64
	}{
		{"minLat", box.MinLat, 90},
		{"maxLat", box.MaxLat, 90},
		{"minLon", box.MinLon, 180},
		{"maxLon", box.MaxLon, 180},
	} {
		if !finite(c.value) || math.Abs(c.value) > c.limit {
			return errors.NewValidationError(FieldBoundingBox+"."+c.name,
				"%v is outside [-%v, %v]", c.value, c.limit, c.limit)
		}
	}
	if box.MinLat > box.MaxLat {
		return errors.NewValidationError(FieldBoundingBox, "minLat %v is greater than maxLat %v", box.MinLat, box.MaxLat)
	}
	if box.MinLon > box.MaxLon {
		return errors.NewValidationError(FieldBoundingBox, "minLon %v is greater than maxLon %v", box.MinLon, box.MaxLon)
	}
	return nil
}

func validateRadius(r domain.CircularRadius) error {
	if !finite(r.CenterLat) || math.Abs(r.CenterLat) > 90 {
		return errors.NewValidationError(FieldCircularRadius+".centerLat", "%v is outside [-90, 90]", r.CenterLat)
	}
	if !finite(r.CenterLon) || math.Abs(r.CenterLon) > 180 {
		return errors.NewValidationError(FieldCircularRadius+".centerLon", "%v is outside [-180, 180]", r.CenterLon)
	}
	if !finite(r.RadiusKm) || r.RadiusKm <= 0 {
		return errors.NewValidationError(FieldCircularRadius+".radiusKm", "must be positive, got %v", r.RadiusKm)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
