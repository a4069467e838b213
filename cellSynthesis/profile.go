package cellSynthesis

//Range is a closed interval [Min,Max]
type Range struct {
	Min float64
	Max float64
}

//Contains reports whether Min <= v <= Max
func (r Range) Contains(v float64) bool {
	return r.Min <= v && v <= r.Max
}

//IntRange is a closed integer interval [Min,Max]
type IntRange struct {
	Min int
	Max int
}

func (r IntRange) Contains(v int) bool {
	return r.Min <= v && v <= r.Max
}

//Profile holds the sampling ranges and material choices of one cell type
type Profile struct {
	NominalVoltageV        Range
	CapacityAh             Range
	InternalResistanceMOhm Range
	GravimetricWhPerKg     Range
	VolumetricWhPerL       Range
	ThermalRunawayTempC    IntRange
	//CathodeMaterials with a single entry is a fixed value, no draw is made
	CathodeMaterials  []string
	AnodeMaterial     string
	SeparatorMaterial string
}

var profiles = map[CellType]Profile{
	Cylindrical: {
		NominalVoltageV:        Range{3.6, 3.8},
		CapacityAh:             Range{2.5, 3.5},
		InternalResistanceMOhm: Range{20, 30},
		GravimetricWhPerKg:     Range{230, 250},
		VolumetricWhPerL:       Range{600, 700},
		ThermalRunawayTempC:    IntRange{140, 160},
		CathodeMaterials:       []string{"LiCoO2", "NCA"},
		AnodeMaterial:          "Graphite",
		SeparatorMaterial:      "PE",
	},
	Pouch: {
		NominalVoltageV:        Range{3.7, 3.9},
		CapacityAh:             Range{4.0, 6.0},
		InternalResistanceMOhm: Range{15, 25},
		GravimetricWhPerKg:     Range{270, 290},
		VolumetricWhPerL:       Range{700, 800},
		ThermalRunawayTempC:    IntRange{160, 180},
		CathodeMaterials:       []string{"NMC", "LMO"},
		AnodeMaterial:          "Silicon-Graphite",
		SeparatorMaterial:      "PP",
	},
	Prismatic: {
		NominalVoltageV:        Range{3.2, 3.3},
		CapacityAh:             Range{20.0, 30.0},
		InternalResistanceMOhm: Range{4, 10},
		GravimetricWhPerKg:     Range{110, 130},
		VolumetricWhPerL:       Range{280, 320},
		ThermalRunawayTempC:    IntRange{200, 230},
		CathodeMaterials:       []string{"LiFePO4"},
		AnodeMaterial:          "Graphite",
		SeparatorMaterial:      "Ceramic-coated",
	},
}

//ProfileOf returns the profile for cellType. The second return value is false for values outside the enum
func ProfileOf(cellType CellType) (Profile, bool) {
	p, ok := profiles[cellType]
	if !ok {
		return Profile{}, false
	}
	//hand out a copy so callers cannot alter the material table
	p.CathodeMaterials = append([]string(nil), p.CathodeMaterials...)
	return p, true
}
