package dto

import (
	stderrs "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argo-float-service/internal/domain"
	"github.com/argo-float-service/internal/filter"
	"github.com/argo-float-service/internal/pkg/errors"
	"github.com/argo-float-service/internal/pkg/pagination"
)

func values(kv map[string]string) Query {
	return func(key string) string { return kv[key] }
}

func TestParseFilter_Empty(t *testing.T) {
	req, err := ParseFilter(values(nil))
	require.NoError(t, err)

	assert.False(t, req.DateRange.IsSet())
	assert.False(t, req.Geospatial.BoundingBox.IsSet())
	assert.False(t, req.Geospatial.Radius.IsSet())
	assert.True(t, req.Measurements.IsEmpty())
	assert.Empty(t, req.Platform.Numbers)
	assert.Equal(t, domain.QCAny, req.QualityControl)
}

func TestParseFilter_BoundingBoxNeedsAllBounds(t *testing.T) {
	req, err := ParseFilter(values(map[string]string{"minLat": "0", "maxLat": "25", "minLon": "50"}))
	require.NoError(t, err)
	assert.False(t, req.Geospatial.BoundingBox.IsSet())

	req, err = ParseFilter(values(map[string]string{"minLat": "0", "maxLat": "25", "minLon": "50", "maxLon": "75"}))
	require.NoError(t, err)
	box, ok := req.Geospatial.BoundingBox.Get()
	require.True(t, ok)
	assert.Equal(t, domain.BoundingBox{MinLat: 0, MaxLat: 25, MinLon: 50, MaxLon: 75}, box)
}

func TestParseFilter_RadiusNeedsAllParams(t *testing.T) {
	req, err := ParseFilter(values(map[string]string{"centerLat": "15", "centerLon": "65"}))
	require.NoError(t, err)
	assert.False(t, req.Geospatial.Radius.IsSet())

	req, err = ParseFilter(values(map[string]string{"centerLat": "15", "centerLon": "65", "radiusKm": "250"}))
	require.NoError(t, err)
	r, ok := req.Geospatial.Radius.Get()
	require.True(t, ok)
	assert.Equal(t, domain.CircularRadius{CenterLat: 15, CenterLon: 65, RadiusKm: 250}, r)
}

func TestParseFilter_HalfOpenRanges(t *testing.T) {
	req, err := ParseFilter(values(map[string]string{
		"minTemp":     "20",
		"maxSalinity": "35",
		"maxDepth":    "200",
	}))
	require.NoError(t, err)

	temp, _ := req.Measurements.Temperature.Get()
	assert.Equal(t, domain.Range{Min: 20, Max: 40}, temp)

	sal, _ := req.Measurements.Salinity.Get()
	assert.Equal(t, domain.Range{Min: 0, Max: 35}, sal)

	depth, _ := req.Measurements.Depth.Get()
	assert.Equal(t, domain.Range{Min: 0, Max: 200}, depth)
}

func TestParseFilter_PlatformsAndMetadata(t *testing.T) {
	req, err := ParseFilter(values(map[string]string{
		"platformNumbers": " 2902746 , ,2902755,2902746",
		"dataCenter":      "IN",
		"dataMode":        " D ",
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{"2902746", "2902755"}, req.Platform.Numbers)
	assert.Equal(t, "IN", req.Platform.DataCenter.OrElse(""))
	assert.Equal(t, "D", req.Platform.DataMode.OrElse(""))
	assert.False(t, req.Platform.ProjectName.IsSet())
}

func TestParseQCPolicy(t *testing.T) {
	tests := []struct {
		name     string
		kv       map[string]string
		expected domain.QCPolicy
	}{
		{"none", nil, domain.QCAny},
		{"good only", map[string]string{"goodOnly": "true"}, domain.QCGoodOnly},
		{"questionable", map[string]string{"includeQuestionable": "true"}, domain.QCIncludeQuestionable},
		{"both, good only wins", map[string]string{"goodOnly": "true", "includeQuestionable": "true"}, domain.QCGoodOnly},
		{"not literally true", map[string]string{"goodOnly": "1"}, domain.QCAny},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseQCPolicy(values(tt.kv)))
		})
	}
}

func TestParseFilter_Dates(t *testing.T) {
	req, err := ParseFilter(values(map[string]string{
		"startDate": "2020-01-01",
		"endDate":   "2020-06-30T12:00:00+02:00",
	}))
	require.NoError(t, err)

	dr, ok := req.DateRange.Get()
	require.True(t, ok)
	start, _ := dr.Start.Get()
	end, _ := dr.End.Get()
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2020, 6, 30, 10, 0, 0, 0, time.UTC), end)
}

func TestParseFilter_StartOnly(t *testing.T) {
	req, err := ParseFilter(values(map[string]string{"startDate": "2021-03-04"}))
	require.NoError(t, err)

	dr, ok := req.DateRange.Get()
	require.True(t, ok)
	assert.True(t, dr.Start.IsSet())
	assert.False(t, dr.End.IsSet())
}

func TestParseFilter_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		kv    map[string]string
		field string
	}{
		{"bad date", map[string]string{"startDate": "yesterday"}, "startDate"},
		{"bad number", map[string]string{"minTemp": "warm"}, "minTemp"},
		{"nan", map[string]string{"centerLat": "NaN", "centerLon": "1", "radiusKm": "1"}, "centerLat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFilter(values(tt.kv))
			require.Error(t, err)

			var ve *errors.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestParsePage(t *testing.T) {
	req := ParsePage(values(map[string]string{"page": "3", "limit": "1000"}), pagination.DefaultLimit, pagination.MaxLimit)
	assert.Equal(t, pagination.Request{Page: 3, Limit: 100, Offset: 200}, req)

	req = ParsePage(values(map[string]string{"page": "abc"}), pagination.DefaultLimit, pagination.MaxLimit)
	assert.Equal(t, pagination.Request{Page: 1, Limit: 20, Offset: 0}, req)
}

func TestParseNearest(t *testing.T) {
	req, err := ParseNearest(values(map[string]string{"lat": "15.5", "lon": "65"}))
	require.NoError(t, err)

	require.NotNil(t, req.Lat)
	assert.Equal(t, 15.5, *req.Lat)
	assert.Equal(t, float64(DefaultNearestDistanceKm), req.MaxDistance)
	assert.Equal(t, DefaultNearestLimit, req.Limit)
	assert.Equal(t, domain.GeoPoint{Latitude: 15.5, Longitude: 65}, req.Center())

	req, err = ParseNearest(values(map[string]string{"maxDistance": "100", "limit": "5"}))
	require.NoError(t, err)
	assert.Nil(t, req.Lat)
	assert.Equal(t, 100.0, req.MaxDistance)
	assert.Equal(t, 5, req.Limit)

	_, err = ParseNearest(values(map[string]string{"limit": "many"}))
	assert.True(t, errors.IsValidation(err))
}

func TestParseMeasurements(t *testing.T) {
	req, err := ParseMeasurements(" 42 ", values(map[string]string{"minDepth": "10", "goodOnly": "true"}))
	require.NoError(t, err)

	assert.Equal(t, "42", req.ProfileID)
	assert.Equal(t, domain.QCGoodOnly, req.QualityControl)
	assert.Equal(t, pagination.DefaultMeasurementLimit, req.Page.Limit)

	depth, ok := req.Depth.Get()
	require.True(t, ok)
	assert.Equal(t, domain.AtLeast(10), depth)
}

func TestParseMeasurements_LoneBoundBeyondDefaults(t *testing.T) {
	req, err := ParseMeasurements("1", values(map[string]string{"minDepth": "7000"}))
	require.NoError(t, err)

	depth, _ := req.Depth.Get()
	assert.Equal(t, domain.AtLeast(7000), depth)

	clauses, err := filter.Compile(domain.FilterRequest{Measurements: domain.MeasurementFilter{Depth: req.Depth}})
	require.NoError(t, err)
	require.Len(t, clauses, 1)
	assert.Equal(t, "m.pres_adjusted >= ?", clauses[0].SQL)
	assert.Equal(t, []any{7000.0}, clauses[0].Args)

	req, err = ParseMeasurements("1", values(map[string]string{"maxDepth": "50"}))
	require.NoError(t, err)
	depth, _ = req.Depth.Get()
	assert.Equal(t, domain.AtMost(50), depth)
}

func TestParseMeasurements_ProfileID(t *testing.T) {
	for _, raw := range []string{"", "secret-42", "1.5", "-3", "0x10"} {
		_, err := ParseMeasurements(raw, values(nil))

		var ve *errors.ValidationError
		require.True(t, stderrs.As(err, &ve), raw)
		assert.Equal(t, "id", ve.Field)
		assert.True(t, ve.Param)
		if raw != "" {
			assert.NotContains(t, ve.Error(), raw)
		}
	}

	id, err := ParseProfileID(" 0042 ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestParseFilter_LoneBoundBeyondDefaults(t *testing.T) {
	req, err := ParseFilter(values(map[string]string{"minDepth": "7000", "maxTemp": "-20"}))
	require.NoError(t, err)

	depth, _ := req.Measurements.Depth.Get()
	assert.Equal(t, domain.AtLeast(7000), depth)
	temp, _ := req.Measurements.Temperature.Get()
	assert.Equal(t, domain.AtMost(-20), temp)

	_, err = filter.Compile(req)
	assert.NoError(t, err)
}

func TestParseCompareRegions(t *testing.T) {
	req, err := ParseCompareRegions(values(nil))
	require.NoError(t, err)

	assert.Equal(t, domain.OceanRegionKeys(), req.Keys)
	depth, _ := req.Depth.Get()
	assert.Equal(t, domain.Range{Min: 0, Max: 100}, depth)
	assert.False(t, req.DateRange.IsSet())

	req, err = ParseCompareRegions(values(map[string]string{"regions": "arabian-sea,bay-of-bengal", "depthRange": "100-500"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"arabian-sea", "bay-of-bengal"}, req.Keys)
	depth, _ = req.Depth.Get()
	assert.Equal(t, domain.Range{Min: 100, Max: 500}, depth)
}

func TestParseDepthRange(t *testing.T) {
	tests := []struct {
		raw      string
		expected domain.Range
	}{
		{"0-100", domain.Range{Min: 0, Max: 100}},
		{" 100 - 500 ", domain.Range{Min: 100, Max: 500}},
		{"-5-100", domain.Range{Min: -5, Max: 100}},
		{"-5,100", domain.Range{Min: -5, Max: 100}},
		{"1e-3-5", domain.Range{Min: 0.001, Max: 5}},
		{"-10--5", domain.Range{Min: -10, Max: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			r, err := ParseDepthRange(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, r)
		})
	}
}

func TestParseDepthRange_Invalid(t *testing.T) {
	for _, raw := range []string{"100", "a-b", "10-x", "-5", ""} {
		_, err := ParseDepthRange(raw)
		assert.True(t, errors.IsValidation(err), raw)
	}
}

func TestNewQualityControlStatsResponse(t *testing.T) {
	stats := domain.QualityControlStats{}
	stats.Add("temperature", domain.QualityGood, 10)
	stats.Add("salinity", domain.QualityBad, 3)

	resp := NewQualityControlStatsResponse(stats)
	assert.Equal(t, int64(13), resp.Total)
}

func TestNewNearestFloatsResponse_EmptyList(t *testing.T) {
	lat, lon := 1.0, 2.0
	resp := NewNearestFloatsResponse(NearestFloatsRequest{Lat: &lat, Lon: &lon, MaxDistance: 50}, nil)

	assert.NotNil(t, resp.Floats)
	assert.Equal(t, 0, resp.FloatsFound)
	assert.Equal(t, 50.0, resp.MaxDistance)
}
