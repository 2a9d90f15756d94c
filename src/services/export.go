package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"github.com/quantfetch/ashare-hist/src/models"
)

// ExportToCsv writes the records to outDir/filename as UTF-8 CSV with a header
// row and no index column, creating outDir if needed. An existing file at the
// same path is overwritten.
func ExportToCsv(outDir string, filename string, records []*models.QuoteRecord) (string, error) {
	outFilePath := path.Join(outDir, filename)

	// Create directory if it doesn't exist
	if _, err := os.Stat(outDir); os.IsNotExist(err) {
		if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
			return "", fmt.Errorf("ExportToCsv: failed to create directory: %w", err)
		}
		log.Infof("Created output directory %s", outDir)
	}

	file, err := os.Create(outFilePath)
	if err != nil {
		return "", fmt.Errorf("ExportToCsv: failed to create file: %w", err)
	}
	defer file.Close()

	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		writer := csv.NewWriter(out)
		writer.Comma = ','
		return gocsv.NewSafeCSVWriter(writer)
	})

	if err := gocsv.MarshalFile(&records, file); err != nil {
		return "", fmt.Errorf("ExportToCsv: failed to write to file: %w", err)
	}

	return outFilePath, nil
}
