package cellSynthesis

import "math"

//Rand is the subset of *math/rand.Rand used by the synthesizer. Tests pass a seeded instance
type Rand interface {
	//Float64 returns a value in [0,1)
	Float64() float64
	//Intn returns a value in [0,n)
	Intn(n int) int
}

//roundTo rounds v half away from zero to decimals fractional digits
func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}

//uniform draws from [r.Min,r.Max] and rounds to decimals. All bounds sit on the rounding grid so the
//rounded value never leaves the interval
func uniform(rng Rand, r Range, decimals int) float64 {
	return roundTo(r.Min+(r.Max-r.Min)*rng.Float64(), decimals)
}

//uniformInt draws from [r.Min,r.Max], both ends inclusive
func uniformInt(rng Rand, r IntRange) int {
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

func choice(rng Rand, options []string) string {
	if len(options) == 1 {
		return options[0]
	}
	return options[rng.Intn(len(options))]
}

//NewCellRecord synthesizes the row with the given 1-based index
func NewCellRecord(index int, rng Rand) CellRecord {
	cellType := AllCellTypes[rng.Intn(len(AllCellTypes))]
	p := profiles[cellType]

	return CellRecord{
		CellID:                 FormatCellID(index),
		CellType:               cellType,
		NominalVoltageV:        uniform(rng, p.NominalVoltageV, 2),
		CapacityAh:             uniform(rng, p.CapacityAh, 2),
		InternalResistanceMOhm: uniform(rng, p.InternalResistanceMOhm, 1),
		GravimetricWhPerKg:     uniform(rng, p.GravimetricWhPerKg, 2),
		VolumetricWhPerL:       uniform(rng, p.VolumetricWhPerL, 2),
		ThermalRunawayTempC:    uniformInt(rng, p.ThermalRunawayTempC),
		CathodeMaterial:        choice(rng, p.CathodeMaterials),
		AnodeMaterial:          p.AnodeMaterial,
		SeparatorMaterial:      p.SeparatorMaterial,
	}
}

//Generate returns rows 1..n in order. n <= 0 yields an empty slice
func Generate(n int, rng Rand) []CellRecord {
	if n <= 0 {
		return []CellRecord{}
	}
	records := make([]CellRecord, 0, n)
	for i := 1; i <= n; i++ {
		records = append(records, NewCellRecord(i, rng))
	}
	return records
}
