package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/argo-float-service/internal/domain"
	"github.com/argo-float-service/internal/filter"
	"github.com/argo-float-service/internal/pkg/errors"
	"github.com/argo-float-service/internal/pkg/pagination"
	"github.com/argo-float-service/internal/query"
	"github.com/argo-float-service/internal/usecase/dto"
)

const profileColumns = `p.profile_id AS profile_id, p.platform_number AS platform_number,
		p.cycle_number AS cycle_number, p.latitude AS latitude, p.longitude AS longitude, p.juld AS juld,
		p.data_centre AS data_centre, p.data_mode AS data_mode, p.platform_type AS platform_type,
		p.project_name AS project_name, p.pi_name AS pi_name,
		p.profile_temp_qc AS profile_temp_qc, p.profile_psal_qc AS profile_psal_qc,
		p.profile_pres_qc AS profile_pres_qc`

const measurementColumns = `m.profile_id AS profile_id, m.level_index AS level_index,
		m.pres_adjusted AS pressure, m.temp_adjusted AS temperature, m.psal_adjusted AS salinity,
		m.temp_qc AS temp_qc, m.psal_qc AS psal_qc, m.pres_qc AS pres_qc,
		m.temp_adjusted_error AS temperature_error, m.psal_adjusted_error AS salinity_error,
		m.pres_adjusted_error AS pressure_error`

// ListProfiles - страница профилей (новые первыми), их количество и число связанных измерений
func (uc *FloatUseCase) ListProfiles(ctx context.Context, req domain.FilterRequest, page pagination.Request) (*dto.ProfileListResponse, error) {
	clauses, err := filter.Compile(req)
	if err != nil {
		return nil, err
	}
	joined := filter.RequiresMeasurements(req)

	selectList := "SELECT " + profileColumns
	if joined {
		selectList = "SELECT DISTINCT " + profileColumns
	}

	var (
		rows         []domain.Row
		total        int64
		measurements int64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		q := query.NewBuilder().
			Append(uc.fromProfiles(selectList, joined, clauses)).
			Add("ORDER BY juld DESC NULLS LAST, profile_id").
			Add("LIMIT ? OFFSET ?", page.Limit, page.Offset).
			Clause()

		var err error
		rows, err = uc.run(gctx, "profiles.page", q)
		return err
	})

	g.Go(func() error {
		var err error
		total, err = uc.count(gctx, "profiles.count",
			uc.fromProfiles("SELECT COUNT(DISTINCT p.profile_id) AS total", joined, clauses))
		return err
	})

	g.Go(func() error {
		var err error
		measurements, err = uc.count(gctx, "profiles.measurements",
			uc.fromProfiles("SELECT COUNT(*) AS total", true, clauses))
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	profiles := make([]domain.ProfileSummary, 0, len(rows))
	for _, r := range rows {
		profiles = append(profiles, toProfileSummary(r))
	}

	return &dto.ProfileListResponse{
		Profiles:         pagination.NewResult(profiles, page, int(total)),
		MeasurementCount: measurements,
	}, nil
}

// ProfileMeasurements - страница измерений профиля по level_index, их количество и заголовок профиля
func (uc *FloatUseCase) ProfileMeasurements(ctx context.Context, req dto.ProfileMeasurementsRequest) (*dto.MeasurementsResponse, error) {
	id, err := dto.ParseProfileID(req.ProfileID)
	if err != nil {
		return nil, err
	}

	clauses, err := filter.Compile(domain.FilterRequest{
		Measurements:   domain.MeasurementFilter{Depth: req.Depth},
		QualityControl: req.QualityControl,
	})
	if err != nil {
		return nil, err
	}

	where := query.Where(append([]query.Clause{query.Eq("m.profile_id", id)}, clauses...)...)
	from := fmt.Sprintf("FROM %s m", uc.tables.Measurements)

	var (
		rows   []domain.Row
		total  int64
		header []domain.Row
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		q := query.NewBuilder().
			Add("SELECT " + measurementColumns).
			Add(from).
			Append(where).
			Add("ORDER BY m.level_index").
			Add("LIMIT ? OFFSET ?", req.Page.Limit, req.Page.Offset).
			Clause()

		var err error
		rows, err = uc.run(gctx, "measurements.page", q)
		return err
	})

	g.Go(func() error {
		q := query.NewBuilder().Add("SELECT COUNT(*) AS total").Add(from).Append(where).Clause()

		var err error
		total, err = uc.count(gctx, "measurements.count", q)
		return err
	})

	g.Go(func() error {
		q := query.NewBuilder().
			Add("SELECT "+profileColumns).
			Add(fmt.Sprintf("FROM %s p", uc.tables.Profiles)).
			Append(query.Where(query.Eq("p.profile_id", id))).
			Add("LIMIT 1").
			Clause()

		var err error
		header, err = uc.run(gctx, "measurements.profile", q)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if len(header) == 0 {
		return nil, errors.ErrProfileNotFound
	}

	items := make([]domain.Measurement, 0, len(rows))
	for _, r := range rows {
		items = append(items, toMeasurement(r))
	}

	return &dto.MeasurementsResponse{
		Profile:      toProfileSummary(header[0]),
		Measurements: pagination.NewResult(items, req.Page, int(total)),
	}, nil
}
