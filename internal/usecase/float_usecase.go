package usecase

import (
	"context"
	stderrors "errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/argo-float-service/internal/config"
	"github.com/argo-float-service/internal/domain"
	"github.com/argo-float-service/internal/domain/repository"
	"github.com/argo-float-service/internal/filter"
	"github.com/argo-float-service/internal/geo"
	"github.com/argo-float-service/internal/pkg/errors"
	"github.com/argo-float-service/internal/pkg/pagination"
	"github.com/argo-float-service/internal/query"
	"github.com/argo-float-service/internal/usecase/dto"
)

// Ограничения отдельных запросов по платформе
const (
	floatProfileLevels = 2000
	timeSeriesCycles   = 500
	trajectoryCycles   = 200
	logQueryLen        = 200
)

// Tables - имена таблиц хранилища
type Tables struct {
	Profiles     string
	Measurements string
}

// TablesFrom берёт имена таблиц из конфигурации
func TablesFrom(cfg config.WarehouseConfig) Tables {
	return Tables{Profiles: cfg.ProfilesTable, Measurements: cfg.MeasurementsTable}
}

// FloatUseCase - use case для поиска буёв, профилей и статистики
type FloatUseCase struct {
	executor repository.WarehouseExecutor
	tables   Tables
	logger   *zap.Logger
}

// NewFloatUseCase - создание нового FloatUseCase
func NewFloatUseCase(
	executor repository.WarehouseExecutor,
	tables Tables,
	logger *zap.Logger,
) *FloatUseCase {
	return &FloatUseCase{
		executor: executor,
		tables:   tables,
		logger:   logger,
	}
}

// Search - страница сводок по буям, общее число буёв и статистика выборки
func (uc *FloatUseCase) Search(ctx context.Context, req domain.FilterRequest, page pagination.Request) (*dto.FloatSearchResponse, error) {
	clauses, err := filter.Compile(req)
	if err != nil {
		return nil, err
	}
	joined := filter.RequiresMeasurements(req)

	var (
		rows  []domain.Row
		total int64
		stats domain.DatasetStatistics
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		rows, err = uc.run(gctx, "search.page", uc.floatPageQuery(clauses, joined, page))
		return err
	})

	g.Go(func() error {
		var err error
		total, err = uc.count(gctx, "search.count", uc.fromProfiles(
			"SELECT COUNT(DISTINCT p.platform_number) AS total", joined, clauses))
		return err
	})

	g.Go(func() error {
		var err error
		stats, err = uc.datasetStatistics(gctx, clauses)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	floats := make([]domain.FloatSummary, 0, len(rows))
	for _, r := range rows {
		floats = append(floats, toFloatSummary(r))
	}

	return &dto.FloatSearchResponse{
		Floats:     pagination.NewResult(floats, page, int(total)),
		Statistics: stats,
	}, nil
}

// floatPageQuery - последний подходящий профиль каждой платформы
// с приповерхностным (level_index = 0) измерением
func (uc *FloatUseCase) floatPageQuery(clauses []query.Clause, joined bool, page pagination.Request) query.Clause {
	matched := uc.fromProfiles(`SELECT DISTINCT p.profile_id, p.platform_number, p.latitude, p.longitude, p.juld,
		p.data_centre, p.data_mode, p.platform_type, p.project_name, p.pi_name`, joined, clauses)

	return query.NewBuilder().
		Append(query.New("WITH matched AS (\n"+matched.SQL+"\n),", matched.Args...)).
		Add(`ranked AS (
		SELECT matched.*,
			COUNT(*) OVER (PARTITION BY platform_number) AS profile_count,
			ROW_NUMBER() OVER (PARTITION BY platform_number ORDER BY juld DESC NULLS LAST, profile_id DESC) AS rn
		FROM matched
	)`).
		Add(`SELECT r.platform_number AS id, r.latitude AS latitude, r.longitude AS longitude,
		s.temp_adjusted AS temperature, s.psal_adjusted AS salinity, s.pres_adjusted AS depth,
		r.juld AS juld, r.data_centre AS data_centre, r.data_mode AS data_mode,
		r.platform_type AS platform_type, r.project_name AS project_name, r.pi_name AS pi_name,
		r.profile_count AS profiles`).
		Add("FROM ranked r").
		Add(fmt.Sprintf("LEFT JOIN %s s ON s.profile_id = r.profile_id AND s.level_index = 0", uc.tables.Measurements)).
		Add("WHERE r.rn = 1").
		Add("ORDER BY r.platform_number").
		Add("LIMIT ? OFFSET ?", page.Limit, page.Offset).
		Clause()
}

// NearestFloats - последнее положение каждой платформы в радиусе от точки,
// по возрастанию расстояния
func (uc *FloatUseCase) NearestFloats(ctx context.Context, center domain.GeoPoint, radiusKm float64, limit int) ([]domain.NearestFloat, error) {
	if !geo.ValidateCoordinates(center.Latitude, center.Longitude) {
		return nil, errors.ErrInvalidCoordinates
	}
	if radiusKm <= 0 {
		return nil, errors.ErrInvalidRadius
	}
	if limit <= 0 {
		limit = dto.DefaultNearestLimit
	}
	if limit > dto.MaxNearestLimit {
		limit = dto.MaxNearestLimit
	}

	distance := geo.DistanceExpr(center, geo.LatitudeColumn, geo.LongitudeColumn)

	q := query.NewBuilder().
		Append(query.New(`SELECT p.platform_number AS id, p.latitude AS latitude, p.longitude AS longitude,
		p.cycle_number AS cycle, p.juld AS juld, `+distance.SQL+` AS distance_km`, distance.Args...)).
		Add(fmt.Sprintf(`FROM (
		SELECT platform_number, cycle_number, latitude, longitude, juld,
			ROW_NUMBER() OVER (PARTITION BY platform_number ORDER BY cycle_number DESC) AS rn
		FROM %s
		WHERE latitude IS NOT NULL AND longitude IS NOT NULL
	) p`, uc.tables.Profiles)).
		Append(query.Where(query.Raw("p.rn = 1"), geo.RadiusPredicate(center, radiusKm))).
		Add("ORDER BY distance_km").
		Add("LIMIT ?", limit).
		Clause()

	rows, err := uc.run(ctx, "nearest", q)
	if err != nil {
		return nil, err
	}

	candidates := make([]domain.NearestFloat, 0, len(rows))
	for _, r := range rows {
		candidates = append(candidates, toNearestFloat(r))
	}

	ranked := geo.NearestWithinRadius(candidates, center, radiusKm, limit)
	floats := make([]domain.NearestFloat, 0, len(ranked))
	for _, r := range ranked {
		f := r.Item
		f.DistanceKm = round(r.DistanceKm, 2)
		floats = append(floats, f)
	}

	return floats, nil
}

// FloatProfile - уровни последнего профиля платформы с классификацией качества
func (uc *FloatUseCase) FloatProfile(ctx context.Context, platformNumber string) (*domain.FloatProfile, error) {
	q := query.NewBuilder().
		Add(fmt.Sprintf(`WITH latest AS (
		SELECT p.profile_id
		FROM %s p
		WHERE p.platform_number = ?
		ORDER BY p.juld DESC NULLS LAST, p.cycle_number DESC
		LIMIT 1
	)`, uc.tables.Profiles), platformNumber).
		Add(`SELECT m.pres_adjusted AS pressure, m.temp_adjusted AS temperature, m.psal_adjusted AS salinity,
		m.temp_qc AS temp_qc, m.psal_qc AS psal_qc, m.pres_qc AS pres_qc`).
		Add(fmt.Sprintf("FROM %s m JOIN latest l ON l.profile_id = m.profile_id", uc.tables.Measurements)).
		Add("WHERE m.pres_adjusted IS NOT NULL AND m.temp_adjusted IS NOT NULL AND m.psal_adjusted IS NOT NULL").
		Add("ORDER BY m.pres_adjusted").
		Add(fmt.Sprintf("LIMIT %d", floatProfileLevels)).
		Clause()

	rows, err := uc.run(ctx, "float.profile", q)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.ErrFloatNotFound
	}

	profile := &domain.FloatProfile{
		Depth:        make([]float64, 0, len(rows)),
		Temperature:  make([]float64, 0, len(rows)),
		Salinity:     make([]float64, 0, len(rows)),
		QualityFlags: make([]domain.QualityFlags, 0, len(rows)),
	}
	for _, r := range rows {
		profile.Depth = append(profile.Depth, rowFloat(r, "pressure"))
		profile.Temperature = append(profile.Temperature, rowFloat(r, "temperature"))
		profile.Salinity = append(profile.Salinity, rowFloat(r, "salinity"))
		profile.QualityFlags = append(profile.QualityFlags, domain.ClassifyFlags(
			rowString(r, "temp_qc"), rowString(r, "psal_qc"), rowString(r, "pres_qc")))
	}

	return profile, nil
}

// FloatTimeSeries - средние значения у поверхности (level_index < 10) по циклам
func (uc *FloatUseCase) FloatTimeSeries(ctx context.Context, platformNumber string, dateRange domain.Option[domain.DateRange]) ([]domain.TimeSeriesPoint, error) {
	clauses, err := filter.Compile(domain.FilterRequest{
		DateRange: dateRange,
		Platform:  domain.PlatformFilter{Numbers: []string{platformNumber}},
	})
	if err != nil {
		return nil, err
	}

	q := query.NewBuilder().
		Add(`SELECT p.cycle_number AS cycle_number, p.juld AS juld,
		AVG(CASE WHEN m.level_index < 10 THEN m.temp_adjusted END) AS temperature,
		AVG(CASE WHEN m.level_index < 10 THEN m.psal_adjusted END) AS salinity`).
		Add(uc.joinMeasurements("LEFT JOIN")).
		Append(query.Where(clauses...)).
		Add("GROUP BY p.profile_id, p.cycle_number, p.juld").
		Add("ORDER BY juld NULLS LAST, cycle_number").
		Add(fmt.Sprintf("LIMIT %d", timeSeriesCycles)).
		Clause()

	rows, err := uc.run(ctx, "float.timeseries", q)
	if err != nil {
		return nil, err
	}

	points := make([]domain.TimeSeriesPoint, 0, len(rows))
	for _, r := range rows {
		points = append(points, domain.TimeSeriesPoint{
			Date:        rowDate(r, "juld"),
			CycleNumber: rowInt(r, "cycle_number"),
			Temperature: roundTo(rowFloatPtr(r, "temperature"), 3),
			Salinity:    roundTo(rowFloatPtr(r, "salinity"), 3),
		})
	}
	return points, nil
}

// FloatTrajectory - положение платформы по циклам с температурой у поверхности (level_index < 5)
func (uc *FloatUseCase) FloatTrajectory(ctx context.Context, platformNumber string, dateRange domain.Option[domain.DateRange]) ([]domain.TrajectoryPoint, error) {
	clauses, err := filter.Compile(domain.FilterRequest{
		DateRange: dateRange,
		Platform:  domain.PlatformFilter{Numbers: []string{platformNumber}},
	})
	if err != nil {
		return nil, err
	}
	clauses = append(clauses, query.Raw("p.latitude IS NOT NULL AND p.longitude IS NOT NULL"))

	q := query.NewBuilder().
		Add(`SELECT p.cycle_number AS cycle, p.juld AS juld, p.latitude AS latitude, p.longitude AS longitude,
		AVG(CASE WHEN m.level_index < 5 THEN m.temp_adjusted END) AS temperature`).
		Add(uc.joinMeasurements("LEFT JOIN")).
		Append(query.Where(clauses...)).
		Add("GROUP BY p.profile_id, p.cycle_number, p.juld, p.latitude, p.longitude").
		Add("ORDER BY juld NULLS LAST, cycle").
		Add(fmt.Sprintf("LIMIT %d", trajectoryCycles)).
		Clause()

	rows, err := uc.run(ctx, "float.trajectory", q)
	if err != nil {
		return nil, err
	}

	points := make([]domain.TrajectoryPoint, 0, len(rows))
	for _, r := range rows {
		points = append(points, domain.TrajectoryPoint{
			Date:        rowDate(r, "juld"),
			Latitude:    rowFloat(r, "latitude"),
			Longitude:   rowFloat(r, "longitude"),
			Cycle:       rowInt(r, "cycle"),
			Temperature: roundTo(rowFloatPtr(r, "temperature"), 3),
		})
	}
	return points, nil
}

// fromProfiles - "<selectList> FROM profiles p [JOIN measurements m] WHERE ..."
func (uc *FloatUseCase) fromProfiles(selectList string, joined bool, clauses []query.Clause) query.Clause {
	b := query.NewBuilder().Add(selectList)
	if joined {
		b.Add(uc.joinMeasurements("JOIN"))
	} else {
		b.Add(fmt.Sprintf("FROM %s p", uc.tables.Profiles))
	}
	return b.Append(query.Where(clauses...)).Clause()
}

func (uc *FloatUseCase) joinMeasurements(join string) string {
	return fmt.Sprintf("FROM %s p %s %s m ON m.profile_id = p.profile_id",
		uc.tables.Profiles, join, uc.tables.Measurements)
}

// run выполняет запрос; ошибка хранилища оборачивается в ExecutionError без значений параметров
func (uc *FloatUseCase) run(ctx context.Context, operation string, q query.Clause) ([]domain.Row, error) {
	rows, err := uc.executor.Execute(ctx, q.SQL, q.Args)
	if err != nil {
		if !stderrors.Is(err, context.Canceled) {
			uc.logger.Error("Warehouse query failed",
				zap.String("operation", operation),
				zap.String("query", query.Summarize(q.SQL, logQueryLen)),
				zap.Int("params", len(q.Args)),
				zap.String("error_kind", errors.ErrorKind(err)),
			)
		}
		return nil, &errors.ExecutionError{
			Operation:  operation,
			Query:      q.SQL,
			ParamCount: len(q.Args),
			Err:        err,
		}
	}
	return rows, nil
}

// count выполняет запрос, возвращающий одну колонку total
func (uc *FloatUseCase) count(ctx context.Context, operation string, q query.Clause) (int64, error) {
	rows, err := uc.run(ctx, operation, q)
	if err != nil {
		return 0, err
	}
	return rowInt(firstRow(rows), "total"), nil
}
