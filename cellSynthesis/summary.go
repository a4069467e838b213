package cellSynthesis

import "gonum.org/v1/gonum/stat"

//TypeSummary holds the row count and column means for all records of one cell type
type TypeSummary struct {
	Count                      int
	MeanNominalVoltageV        float64
	MeanCapacityAh             float64
	MeanInternalResistanceMOhm float64
	MeanGravimetricWhPerKg     float64
	MeanVolumetricWhPerL       float64
	MeanThermalRunawayTempC    float64
}

//typeColumns gathers the numeric columns of one cell type
type typeColumns struct {
	voltage, capacity, resistance, gravimetric, volumetric, thermal []float64
}

//Summarize groups records by type. Types without records are absent from the result
func Summarize(records []CellRecord) map[CellType]TypeSummary {
	columns := make(map[CellType]*typeColumns)
	for _, r := range records {
		c, ok := columns[r.CellType]
		if !ok {
			c = &typeColumns{}
			columns[r.CellType] = c
		}
		c.voltage = append(c.voltage, r.NominalVoltageV)
		c.capacity = append(c.capacity, r.CapacityAh)
		c.resistance = append(c.resistance, r.InternalResistanceMOhm)
		c.gravimetric = append(c.gravimetric, r.GravimetricWhPerKg)
		c.volumetric = append(c.volumetric, r.VolumetricWhPerL)
		c.thermal = append(c.thermal, float64(r.ThermalRunawayTempC))
	}

	summaries := make(map[CellType]TypeSummary, len(columns))
	for cellType, c := range columns {
		summaries[cellType] = TypeSummary{
			Count:                      len(c.voltage),
			MeanNominalVoltageV:        stat.Mean(c.voltage, nil),
			MeanCapacityAh:             stat.Mean(c.capacity, nil),
			MeanInternalResistanceMOhm: stat.Mean(c.resistance, nil),
			MeanGravimetricWhPerKg:     stat.Mean(c.gravimetric, nil),
			MeanVolumetricWhPerL:       stat.Mean(c.volumetric, nil),
			MeanThermalRunawayTempC:    stat.Mean(c.thermal, nil),
		}
	}
	return summaries
}
