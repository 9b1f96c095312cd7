package domain

// QCPolicy - политика фильтрации по флагам контроля качества.
// goodOnly и includeQuestionable взаимоисключающие, поэтому это одно значение.
type QCPolicy int

const (
	// QCAny - без ограничений по флагам
	QCAny QCPolicy = iota
	// QCGoodOnly - только good (или NULL)
	QCGoodOnly
	// QCIncludeQuestionable - good или questionable (или NULL)
	QCIncludeQuestionable
)

// String возвращает имя политики
func (p QCPolicy) String() string {
	switch p {
	case QCGoodOnly:
		return "goodOnly"
	case QCIncludeQuestionable:
		return "includeQuestionable"
	default:
		return "any"
	}
}

// MarshalText кодирует политику именем
func (p QCPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// GeospatialFilter - географические ограничения; оба предиката объединяются через AND
type GeospatialFilter struct {
	BoundingBox Option[BoundingBox]    `json:"boundingBox"`
	Radius      Option[CircularRadius] `json:"circularRadius"`
}

// MeasurementFilter - диапазоны значений измерений
type MeasurementFilter struct {
	Temperature Option[Range] `json:"temperatureRange"`
	Salinity    Option[Range] `json:"salinityRange"`
	Depth       Option[Range] `json:"depthRange"`
}

// IsEmpty возвращает true, если ни один диапазон не задан
func (f MeasurementFilter) IsEmpty() bool {
	return !f.Temperature.IsSet() && !f.Salinity.IsSet() && !f.Depth.IsSet()
}

// PlatformFilter - ограничения по метаданным платформы
type PlatformFilter struct {
	Numbers     []string       `json:"platformNumbers,omitempty"`
	DataCenter  Option[string] `json:"dataCenter"`
	ProjectName Option[string] `json:"projectName"`
	DataMode    Option[string] `json:"dataMode"`
}

// FilterRequest - структурированный запрос фильтрации профилей.
// Создаётся один раз на запрос и дальше не изменяется.
type FilterRequest struct {
	DateRange      Option[DateRange] `json:"dateRange"`
	Geospatial     GeospatialFilter  `json:"geospatial"`
	Measurements   MeasurementFilter `json:"measurements"`
	Platform       PlatformFilter    `json:"platform"`
	QualityControl QCPolicy          `json:"qualityControl"`
}

// TouchesMeasurements возвращает true, если запрос ссылается на колонки measurements
func (r FilterRequest) TouchesMeasurements() bool {
	return !r.Measurements.IsEmpty() || r.QualityControl != QCAny
}
