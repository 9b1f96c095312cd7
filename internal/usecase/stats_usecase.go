package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/argo-float-service/internal/domain"
	"github.com/argo-float-service/internal/filter"
	"github.com/argo-float-service/internal/query"
	"github.com/argo-float-service/internal/usecase/dto"
)

// qcParameter - параметр и колонка его QC флага
type qcParameter struct {
	name   string
	column string
}

var qcParameters = []qcParameter{
	{"temperature", filter.ColumnTempQC},
	{"salinity", filter.ColumnPsalQC},
	{"pressure", filter.ColumnPresQC},
}

// RegionalStatistics - агрегаты температуры и солёности в прямоугольной области
func (uc *FloatUseCase) RegionalStatistics(
	ctx context.Context,
	bounds domain.BoundingBox,
	dateRange domain.Option[domain.DateRange],
	depthRange domain.Option[domain.Range],
) (*domain.RegionalStatistics, error) {
	clauses, err := filter.Compile(domain.FilterRequest{
		DateRange:    dateRange,
		Geospatial:   domain.GeospatialFilter{BoundingBox: domain.Some(bounds)},
		Measurements: domain.MeasurementFilter{Depth: depthRange},
	})
	if err != nil {
		return nil, err
	}

	q := uc.fromProfiles(`SELECT COUNT(DISTINCT p.platform_number) AS float_count,
		COUNT(DISTINCT p.profile_id) AS profile_count,
		COUNT(*) AS measurement_count,
		AVG(m.temp_adjusted) AS temp_avg, MIN(m.temp_adjusted) AS temp_min,
		MAX(m.temp_adjusted) AS temp_max, STDDEV(m.temp_adjusted) AS temp_stddev,
		AVG(m.psal_adjusted) AS psal_avg, MIN(m.psal_adjusted) AS psal_min,
		MAX(m.psal_adjusted) AS psal_max, STDDEV(m.psal_adjusted) AS psal_stddev`, true, clauses)

	rows, err := uc.run(ctx, "stats.regional", q)
	if err != nil {
		return nil, err
	}

	r := firstRow(rows)
	return &domain.RegionalStatistics{
		FloatCount:       rowInt(r, "float_count"),
		ProfileCount:     rowInt(r, "profile_count"),
		MeasurementCount: rowInt(r, "measurement_count"),
		Temperature:      toParameterStats(r, "temp", 2),
		Salinity:         toParameterStats(r, "psal", 3),
	}, nil
}

// CompareRegions - статистика по предопределённым регионам, пустой список - все регионы.
// Неизвестные ключи пропускаются, порядок результата совпадает с порядком ключей.
func (uc *FloatUseCase) CompareRegions(
	ctx context.Context,
	keys []string,
	dateRange domain.Option[domain.DateRange],
	depthRange domain.Option[domain.Range],
) ([]domain.RegionComparison, error) {
	if len(keys) == 0 {
		keys = domain.OceanRegionKeys()
	}

	regions := make([]string, 0, len(keys))
	for _, key := range keys {
		if _, ok := domain.OceanRegions[key]; ok {
			regions = append(regions, key)
		}
	}

	results := make([]domain.RegionComparison, len(regions))

	g, gctx := errgroup.WithContext(ctx)
	for i, key := range regions {
		region := domain.OceanRegions[key]
		g.Go(func() error {
			stats, err := uc.RegionalStatistics(gctx, region.Bounds, dateRange, depthRange)
			if err != nil {
				return fmt.Errorf("region %s: %w", key, err)
			}
			results[i] = domain.RegionComparison{
				Key:                key,
				Region:             region.Name,
				Bounds:             region.Bounds,
				RegionalStatistics: *stats,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// QualityControlStats - распределение измерений по уровням качества для каждого параметра.
// Фильтр применяется в каждой ветке UNION.
func (uc *FloatUseCase) QualityControlStats(ctx context.Context, req domain.FilterRequest) (*dto.QualityControlStatsResponse, error) {
	clauses, err := filter.Compile(req)
	if err != nil {
		return nil, err
	}

	branches := make([]query.Clause, 0, len(qcParameters))
	for _, param := range qcParameters {
		branches = append(branches, query.NewBuilder().
			Add(fmt.Sprintf("SELECT '%s' AS parameter, %s AS flag, COUNT(*) AS flag_count", param.name, param.column)).
			Add(fmt.Sprintf("FROM %s m JOIN %s p ON p.profile_id = m.profile_id",
				uc.tables.Measurements, uc.tables.Profiles)).
			Append(query.Where(append([]query.Clause{query.Raw(param.column + " IS NOT NULL")}, clauses...)...)).
			Add("GROUP BY " + param.column).
			Clause())
	}

	rows, err := uc.run(ctx, "stats.quality", query.Join("\nUNION ALL\n", branches...))
	if err != nil {
		return nil, err
	}

	stats := domain.QualityControlStats{}
	for _, param := range qcParameters {
		stats[param.name] = map[domain.QualityLevel]int64{}
	}
	for _, r := range rows {
		stats.Add(rowString(r, "parameter"), domain.Classify(rowString(r, "flag")), rowInt(r, "flag_count"))
	}

	resp := dto.NewQualityControlStatsResponse(stats)
	return &resp, nil
}

// DatasetStatistics - общие показатели отфильтрованной выборки
func (uc *FloatUseCase) DatasetStatistics(ctx context.Context, req domain.FilterRequest) (*domain.DatasetStatistics, error) {
	clauses, err := filter.Compile(req)
	if err != nil {
		return nil, err
	}

	stats, err := uc.datasetStatistics(ctx, clauses)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (uc *FloatUseCase) datasetStatistics(ctx context.Context, clauses []query.Clause) (domain.DatasetStatistics, error) {
	q := query.NewBuilder().
		Add(`SELECT COUNT(DISTINCT p.platform_number) AS total,
		COUNT(DISTINCT p.profile_id) AS profiles,
		COUNT(m.profile_id) AS measurements,
		AVG(m.temp_adjusted) AS avg_temperature,
		AVG(m.psal_adjusted) AS avg_salinity,
		COUNT(DISTINCT p.data_centre) AS data_centers,
		COUNT(DISTINCT p.platform_type) AS platform_types`).
		Add(uc.joinMeasurements("LEFT JOIN")).
		Append(query.Where(clauses...)).
		Clause()

	rows, err := uc.run(ctx, "stats.dataset", q)
	if err != nil {
		return domain.DatasetStatistics{}, err
	}

	r := firstRow(rows)
	return domain.DatasetStatistics{
		Total:              rowInt(r, "total"),
		Profiles:           rowInt(r, "profiles"),
		Measurements:       rowInt(r, "measurements"),
		AverageTemperature: roundTo(rowFloatPtr(r, "avg_temperature"), 1),
		AverageSalinity:    roundTo(rowFloatPtr(r, "avg_salinity"), 1),
		DataCenters:        rowInt(r, "data_centers"),
		PlatformTypes:      rowInt(r, "platform_types"),
	}, nil
}
