//Package main generates the battery cell dataset battery_data_10000_rows.csv in the working directory
package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"cellSynth/cellSynthesis"
	"cellSynth/logging"
	"cellSynth/tableWriter"

	"github.com/pbnjay/memory"
	"go.uber.org/zap"
)

const defaultRowCount = 10000

//estimatedBytesPerRecord is a generous upper bound for one CellRecord including its strings
const estimatedBytesPerRecord = 512

var (
	errInvalidRowCount = errors.New("row count must be positive")
	errDatasetTooLarge = errors.New("dataset does not fit into system memory")
)

//application bundles the run configuration. There are no flags, the values are fixed
type application struct {
	rowCount      int
	outFolderPath string
	outFileName   string
}

func defaultApplication() *application {
	return &application{
		rowCount:      defaultRowCount,
		outFolderPath: ".",
		outFileName:   tableWriter.FileName(defaultRowCount),
	}
}

func (app *application) outPath() string {
	return filepath.Join(app.outFolderPath, app.outFileName)
}

//validate checks that the dataset can be held in memory. A totalMemory of 0 means unknown and skips the size check
func (app *application) validate(totalMemory uint64) error {
	if app.rowCount <= 0 {
		return fmt.Errorf("%w, got %v", errInvalidRowCount, app.rowCount)
	}
	if totalMemory == 0 {
		return nil
	}
	if need := uint64(app.rowCount) * estimatedBytesPerRecord; need > totalMemory {
		return fmt.Errorf("%w : need about %v bytes, have %v", errDatasetTooLarge, need, totalMemory)
	}
	return nil
}

//run generates all rows, writes them in one pass and prints the confirmation line to stdout
func run(app *application, rng cellSynthesis.Rand, logger *zap.Logger, stdout io.Writer) error {
	if err := app.validate(memory.TotalMemory()); err != nil {
		return fmt.Errorf("invalid configuration : %w", err)
	}

	startTime := time.Now()
	records := cellSynthesis.Generate(app.rowCount, rng)
	logger.Info("generated records", zap.Int("rows", len(records)), zap.Duration("took", time.Since(startTime)))

	summaries := cellSynthesis.Summarize(records)
	for _, cellType := range cellSynthesis.AllCellTypes {
		s, ok := summaries[cellType]
		if !ok {
			continue
		}
		logger.Info("cell type summary",
			zap.Stringer("cellType", cellType),
			zap.Int("count", s.Count),
			zap.Float64("meanCapacityAh", s.MeanCapacityAh),
			zap.Float64("meanNominalVoltageV", s.MeanNominalVoltageV),
			zap.Float64("meanThermalRunawayTempC", s.MeanThermalRunawayTempC),
		)
	}

	if err := tableWriter.WriteTable(app.outPath(), cellSynthesis.Header(), records); err != nil {
		return err
	}
	logger.Info("wrote table", zap.String("path", app.outPath()))

	_, err := fmt.Fprintf(stdout, "Successfully created '%s' with %d rows of data.\n", app.outFileName, app.rowCount)
	return err
}

func main() {
	logger := logging.NewDefaultLogger("cellSynth")
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	if err := run(defaultApplication(), rng, logger, os.Stdout); err != nil {
		logger.Error("failed to create dataset", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}
