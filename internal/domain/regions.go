package domain

import "sort"

// OceanRegion - предопределённый регион для сравнения
type OceanRegion struct {
	Name   string
	Bounds BoundingBox
}

// OceanRegions - регионы Индийского океана, доступные для сравнения
var OceanRegions = map[string]OceanRegion{
	"arabian-sea": {
		Name:   "Arabian Sea",
		Bounds: BoundingBox{MinLat: 0, MaxLat: 25, MinLon: 50, MaxLon: 75},
	},
	"bay-of-bengal": {
		Name:   "Bay of Bengal",
		Bounds: BoundingBox{MinLat: 5, MaxLat: 23, MinLon: 80, MaxLon: 95},
	},
	"southern-indian": {
		Name:   "Southern Indian Ocean",
		Bounds: BoundingBox{MinLat: -60, MaxLat: -20, MinLon: 20, MaxLon: 120},
	},
	"equatorial-indian": {
		Name:   "Equatorial Indian Ocean",
		Bounds: BoundingBox{MinLat: -10, MaxLat: 10, MinLon: 40, MaxLon: 100},
	},
	"western-indian": {
		Name:   "Western Indian Ocean",
		Bounds: BoundingBox{MinLat: -40, MaxLat: 0, MinLon: 30, MaxLon: 60},
	},
}

// OceanRegionKeys возвращает ключи регионов в алфавитном порядке
func OceanRegionKeys() []string {
	keys := make([]string, 0, len(OceanRegions))
	for k := range OceanRegions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
