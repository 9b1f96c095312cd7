package domain

import "strings"

// QualityLevel - семантический уровень качества измерения
type QualityLevel string

const (
	QualityGood         QualityLevel = "good"
	QualityQuestionable QualityLevel = "questionable"
	QualityBad          QualityLevel = "bad"
	QualityUnknown      QualityLevel = "unknown"
)

// qcCodes - сырые ARGO QC флаги для каждого уровня
var qcCodes = map[QualityLevel][]string{
	QualityGood:         {"1"},
	QualityQuestionable: {"2"},
	QualityBad:          {"3", "4"},
}

// Classify переводит сырой QC флаг в QualityLevel.
// Определена для любой строки: нераспознанные коды дают QualityUnknown.
func Classify(code string) QualityLevel {
	switch strings.TrimSpace(code) {
	case "1":
		return QualityGood
	case "2":
		return QualityQuestionable
	case "3", "4":
		return QualityBad
	default:
		return QualityUnknown
	}
}

// QCCodes возвращает сырые коды, соответствующие перечисленным уровням, в порядке уровней
func QCCodes(levels ...QualityLevel) []string {
	var codes []string
	for _, level := range levels {
		codes = append(codes, qcCodes[level]...)
	}
	return codes
}

// QualityFlags - уровни качества для трёх параметров одного измерения
type QualityFlags struct {
	Temperature QualityLevel `json:"temperature"`
	Salinity    QualityLevel `json:"salinity"`
	Pressure    QualityLevel `json:"pressure"`
}

// ClassifyFlags классифицирует тройку сырых флагов temp/psal/pres
func ClassifyFlags(tempQC, psalQC, presQC string) QualityFlags {
	return QualityFlags{
		Temperature: Classify(tempQC),
		Salinity:    Classify(psalQC),
		Pressure:    Classify(presQC),
	}
}
