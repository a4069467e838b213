package cellSynthesis

import (
	"testing"

	"cellSynth/testUtils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_CountsAndMeans(t *testing.T) {
	records := []CellRecord{
		{CellType: Pouch, NominalVoltageV: 3.7, CapacityAh: 4.0, InternalResistanceMOhm: 15.0, GravimetricWhPerKg: 270, VolumetricWhPerL: 700, ThermalRunawayTempC: 160},
		{CellType: Pouch, NominalVoltageV: 3.9, CapacityAh: 6.0, InternalResistanceMOhm: 25.0, GravimetricWhPerKg: 290, VolumetricWhPerL: 800, ThermalRunawayTempC: 180},
		{CellType: Prismatic, NominalVoltageV: 3.25, CapacityAh: 25.0, InternalResistanceMOhm: 7.0, GravimetricWhPerKg: 120, VolumetricWhPerL: 300, ThermalRunawayTempC: 215},
	}
	got := Summarize(records)
	require.Len(t, got, 2)
	_, hasCylindrical := got[Cylindrical]
	assert.False(t, hasCylindrical)

	pouch := got[Pouch]
	assert.Equal(t, 2, pouch.Count)
	assert.InDelta(t, 3.8, pouch.MeanNominalVoltageV, 1e-9)
	assert.InDelta(t, 5.0, pouch.MeanCapacityAh, 1e-9)
	assert.InDelta(t, 20.0, pouch.MeanInternalResistanceMOhm, 1e-9)
	assert.InDelta(t, 280.0, pouch.MeanGravimetricWhPerKg, 1e-9)
	assert.InDelta(t, 750.0, pouch.MeanVolumetricWhPerL, 1e-9)
	assert.InDelta(t, 170.0, pouch.MeanThermalRunawayTempC, 1e-9)

	assert.Equal(t, 1, got[Prismatic].Count)
	assert.InDelta(t, 25.0, got[Prismatic].MeanCapacityAh, 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Empty(t, Summarize(nil))
}

//TestSummarize_GeneratedMeansNearCentre checks that generated data is spread over the whole range rather
//than stuck at one end: with a few thousand rows per type each mean lands close to the interval centre
func TestSummarize_GeneratedMeansNearCentre(t *testing.T) {
	const rows = 9000
	summaries := Summarize(Generate(rows, testUtils.NewDRNG(2024)))
	require.Len(t, summaries, len(AllCellTypes))

	total := 0
	for cellType, s := range summaries {
		total += s.Count
		p, _ := ProfileOf(cellType)
		centre := func(r Range) float64 { return (r.Min + r.Max) / 2 }
		width := func(r Range) float64 { return r.Max - r.Min }

		assert.InDelta(t, centre(p.NominalVoltageV), s.MeanNominalVoltageV, width(p.NominalVoltageV)/10, cellType.String())
		assert.InDelta(t, centre(p.CapacityAh), s.MeanCapacityAh, width(p.CapacityAh)/10, cellType.String())
		assert.InDelta(t, centre(p.InternalResistanceMOhm), s.MeanInternalResistanceMOhm, width(p.InternalResistanceMOhm)/10, cellType.String())
		assert.InDelta(t, centre(p.GravimetricWhPerKg), s.MeanGravimetricWhPerKg, width(p.GravimetricWhPerKg)/10, cellType.String())
		assert.InDelta(t, centre(p.VolumetricWhPerL), s.MeanVolumetricWhPerL, width(p.VolumetricWhPerL)/10, cellType.String())
		thermal := p.ThermalRunawayTempC
		assert.InDelta(t, float64(thermal.Min+thermal.Max)/2, s.MeanThermalRunawayTempC, float64(thermal.Max-thermal.Min)/10, cellType.String())
	}
	assert.Equal(t, rows, total)
}
