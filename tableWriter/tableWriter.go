//Package tableWriter serializes generated cell records as comma separated text
package tableWriter

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"cellSynth/cellSynthesis"
)

//FileName returns the output file name with the row count embedded
func FileName(rowCount int) string {
	return fmt.Sprintf("battery_data_%d_rows.csv", rowCount)
}

//Write puts header followed by one line per record to w. Lines end in \r\n
func Write(w io.Writer, header []string, records []cellSynthesis.CellRecord) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.UseCRLF = true
	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write header : %w", err)
	}
	for i := range records {
		if err := csvWriter.Write(records[i].Fields()); err != nil {
			return fmt.Errorf("failed to write record %v : %w", records[i].CellID, err)
		}
	}
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush records : %w", err)
	}
	return nil
}

//WriteTable creates or truncates path and writes the table to it. The file is closed on every path; a close
//error is only returned if nothing failed before. A partially written file is left in place
func WriteTable(path string, header []string, records []cellSynthesis.CellRecord) (err error) {
	outFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file : %w", err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %v : %w", path, closeErr)
		}
	}()

	bufWriter := bufio.NewWriter(outFile)
	if err := Write(bufWriter, header, records); err != nil {
		return fmt.Errorf("failed to write %v : %w", path, err)
	}
	if err := bufWriter.Flush(); err != nil {
		return fmt.Errorf("failed to flush %v : %w", path, err)
	}
	return syncFile(outFile, path)
}

type syncer interface {
	Sync() error
}

//syncFile commits f to stable storage, wrapping a failure with path
func syncFile(f syncer, path string) error {
	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync %v : %w", path, err)
	}
	return nil
}
