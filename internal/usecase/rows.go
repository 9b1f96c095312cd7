package usecase

import (
	"math"
	"strings"

	"github.com/spf13/cast"

	"github.com/argo-float-service/internal/domain"
	"github.com/argo-float-service/internal/pkg/julian"
)

// Хранилища возвращают числа разными типами (int64, float64, string у NUMERIC),
// поэтому значения строк читаются через cast.

func rowString(r domain.Row, key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	return strings.TrimSpace(cast.ToString(v))
}

func rowFloat(r domain.Row, key string) float64 {
	if f := rowFloatPtr(r, key); f != nil {
		return *f
	}
	return 0
}

func rowFloatPtr(r domain.Row, key string) *float64 {
	v, ok := r[key]
	if !ok || v == nil {
		return nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) {
		return nil
	}
	return &f
}

func rowInt(r domain.Row, key string) int64 {
	v, ok := r[key]
	if !ok || v == nil {
		return 0
	}
	if n, err := cast.ToInt64E(v); err == nil {
		return n
	}
	return int64(rowFloat(r, key))
}

func rowDate(r domain.Row, key string) julian.Date {
	return julian.FromNullable(rowFloatPtr(r, key))
}

// roundTo округляет до places знаков; nil остаётся nil
func roundTo(v *float64, places int) *float64 {
	if v == nil {
		return nil
	}
	p := math.Pow(10, float64(places))
	r := math.Round(*v*p) / p
	return &r
}

func round(v float64, places int) float64 {
	return *roundTo(&v, places)
}

func toFloatSummary(r domain.Row) domain.FloatSummary {
	return domain.FloatSummary{
		ID:                    rowString(r, "id"),
		Latitude:              rowFloat(r, "latitude"),
		Longitude:             rowFloat(r, "longitude"),
		Temperature:           rowFloatPtr(r, "temperature"),
		Salinity:              rowFloatPtr(r, "salinity"),
		Depth:                 rowFloatPtr(r, "depth"),
		LastUpdate:            rowDate(r, "juld"),
		DataCentre:            rowString(r, "data_centre"),
		DataMode:              rowString(r, "data_mode"),
		Platform:              rowString(r, "platform_type"),
		ProjectName:           rowString(r, "project_name"),
		PrincipalInvestigator: rowString(r, "pi_name"),
		Profiles:              rowInt(r, "profiles"),
	}
}

func toProfileSummary(r domain.Row) domain.ProfileSummary {
	return domain.ProfileSummary{
		ProfileID:      rowInt(r, "profile_id"),
		PlatformNumber: rowString(r, "platform_number"),
		CycleNumber:    rowInt(r, "cycle_number"),
		Latitude:       rowFloat(r, "latitude"),
		Longitude:      rowFloat(r, "longitude"),
		Date:           rowDate(r, "juld"),
		DataCenter:     rowString(r, "data_centre"),
		DataMode:       rowString(r, "data_mode"),
		PlatformType:   rowString(r, "platform_type"),
		ProjectName:    rowString(r, "project_name"),
		PIName:         rowString(r, "pi_name"),
		TempQC:         rowString(r, "profile_temp_qc"),
		PsalQC:         rowString(r, "profile_psal_qc"),
		PresQC:         rowString(r, "profile_pres_qc"),
	}
}

func toMeasurement(r domain.Row) domain.Measurement {
	tempQC := rowString(r, "temp_qc")
	psalQC := rowString(r, "psal_qc")
	presQC := rowString(r, "pres_qc")

	return domain.Measurement{
		ProfileID:        rowInt(r, "profile_id"),
		LevelIndex:       rowInt(r, "level_index"),
		Pressure:         rowFloatPtr(r, "pressure"),
		Temperature:      rowFloatPtr(r, "temperature"),
		Salinity:         rowFloatPtr(r, "salinity"),
		TempQC:           tempQC,
		PsalQC:           psalQC,
		PresQC:           presQC,
		Quality:          domain.ClassifyFlags(tempQC, psalQC, presQC),
		TemperatureError: rowFloatPtr(r, "temperature_error"),
		SalinityError:    rowFloatPtr(r, "salinity_error"),
		PressureError:    rowFloatPtr(r, "pressure_error"),
	}
}

func toNearestFloat(r domain.Row) domain.NearestFloat {
	return domain.NearestFloat{
		ID:         rowString(r, "id"),
		Latitude:   rowFloat(r, "latitude"),
		Longitude:  rowFloat(r, "longitude"),
		Cycle:      rowInt(r, "cycle"),
		LastSeen:   rowDate(r, "juld"),
		DistanceKm: rowFloat(r, "distance_km"),
	}
}

func toParameterStats(r domain.Row, prefix string, places int) domain.ParameterStats {
	return domain.ParameterStats{
		Avg:    roundTo(rowFloatPtr(r, prefix+"_avg"), places),
		Min:    roundTo(rowFloatPtr(r, prefix+"_min"), places),
		Max:    roundTo(rowFloatPtr(r, prefix+"_max"), places),
		StdDev: roundTo(rowFloatPtr(r, prefix+"_stddev"), places),
	}
}

func firstRow(rows []domain.Row) domain.Row {
	if len(rows) == 0 {
		return domain.Row{}
	}
	return rows[0]
}
