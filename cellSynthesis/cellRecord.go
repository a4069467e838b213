package cellSynthesis

import (
	"fmt"
	"strconv"
)

//Column labels in output order
const (
	ColCellID             = "Cell_ID"
	ColCellType           = "Cell_Type"
	ColNominalVoltage     = "Nominal_Voltage_V"
	ColCapacity           = "Capacity_Ah"
	ColInternalResistance = "Internal_Resistance_mOhm"
	ColGravimetricDensity = "Gravimetric_Energy_Density_Wh/kg"
	ColVolumetricDensity  = "Volumetric_Energy_Density_Wh/L"
	ColThermalRunaway     = "Thermal_Runaway_Temp_C"
	ColCathode            = "Cathode_Material"
	ColAnode              = "Anode_Material"
	ColSeparator          = "Separator_Material"
)

var header = []string{
	ColCellID, ColCellType, ColNominalVoltage, ColCapacity, ColInternalResistance,
	ColGravimetricDensity, ColVolumetricDensity, ColThermalRunaway, ColCathode,
	ColAnode, ColSeparator,
}

//Header returns a fresh copy of the 11 column labels
func Header() []string {
	return append([]string(nil), header...)
}

//CellRecord is one generated row. Float fields are already rounded to their output precision
type CellRecord struct {
	CellID                 string
	CellType               CellType
	NominalVoltageV        float64
	CapacityAh             float64
	InternalResistanceMOhm float64
	GravimetricWhPerKg     float64
	VolumetricWhPerL       float64
	ThermalRunawayTempC    int
	CathodeMaterial        string
	AnodeMaterial          string
	SeparatorMaterial      string
}

//FormatCellID returns BAT-NNNNN for index
func FormatCellID(index int) string {
	return fmt.Sprintf("BAT-%05d", index)
}

//Fields serializes r in header order. Resistance keeps one fractional digit, the other floats two
func (r CellRecord) Fields() []string {
	return []string{
		r.CellID,
		r.CellType.String(),
		strconv.FormatFloat(r.NominalVoltageV, 'f', 2, 64),
		strconv.FormatFloat(r.CapacityAh, 'f', 2, 64),
		strconv.FormatFloat(r.InternalResistanceMOhm, 'f', 1, 64),
		strconv.FormatFloat(r.GravimetricWhPerKg, 'f', 2, 64),
		strconv.FormatFloat(r.VolumetricWhPerL, 'f', 2, 64),
		strconv.Itoa(r.ThermalRunawayTempC),
		r.CathodeMaterial,
		r.AnodeMaterial,
		r.SeparatorMaterial,
	}
}
