package run

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/quantfetch/ashare-hist/src/models"
	"github.com/quantfetch/ashare-hist/src/services"
)

type RunArgs struct {
	Symbol string
	Adjust string
}

type RunResult struct {
	OutputPath string
	RowCount   int
}

const previewRows = 5

// Provider history starts no earlier than 1990, so the full range is requested.
var historyStart = time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)

// Run executes the full pipeline: fetch the daily history, normalize it and
// write one CSV file under the A_data directory.
func Run(args RunArgs) (RunResult, error) {
	symbol := models.StockSymbol(args.Symbol)
	adjust := models.ResolveAdjust(args.Adjust)

	log.Infof("Fetching history for %s (adjust: %s)", symbol, args.Adjust)

	baseURL := os.Getenv("HIST_BASE_URL")
	if baseURL == "" {
		baseURL = services.DefaultBaseURL
	}

	data, err := services.FetchEastmoneyDailyKlines(baseURL, symbol, adjust, historyStart, time.Now(), httpTimeout())
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: failed to fetch history: %w", err)
	}

	records, err := data.ToRecords()
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: failed to normalize history: %w", err)
	}

	records = models.DropEmptyRows(records)

	outDir, err := resolveOutDir()
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: %w", err)
	}

	filename := fmt.Sprintf("%s_%s_A_data.csv", symbol, adjust.FilenameSuffix())

	outFilePath, err := services.ExportToCsv(outDir, filename, records)
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: failed to export csv: %w", err)
	}

	log.Infof("Exported %d rows to %s", len(records), outFilePath)

	fmt.Printf("Saved data to: %s\n", outFilePath)
	fmt.Print(Preview(records))

	return RunResult{
		OutputPath: outFilePath,
		RowCount:   len(records),
	}, nil
}

// resolveOutDir returns the A_data directory next to the executable. OUT_DIR
// overrides the parent directory.
func resolveOutDir() (string, error) {
	if dir := os.Getenv("OUT_DIR"); dir != "" {
		return filepath.Join(dir, "A_data"), nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolveOutDir: failed to locate executable: %w", err)
	}

	return filepath.Join(filepath.Dir(exe), "A_data"), nil
}

func httpTimeout() time.Duration {
	if s := os.Getenv("HTTP_TIMEOUT_SECONDS"); s != "" {
		if secs, err := strconv.Atoi(s); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
		log.Warnf("Ignoring invalid HTTP_TIMEOUT_SECONDS value %q", s)
	}
	return 10 * time.Second
}

// Preview renders the total row count and the first rows of the table for the
// console.
func Preview(records []*models.QuoteRecord) string {
	display := &strings.Builder{}
	p := message.NewPrinter(language.English)

	display.WriteString(p.Sprintf("Total rows: %d\n", len(records)))
	display.WriteString("First rows:\n")

	table := tablewriter.NewWriter(display)
	table.SetHeader([]string{"date", "open", "close", "high", "low", "volume"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetColumnSeparator("")

	for i, r := range records {
		if i >= previewRows {
			break
		}
		table.Append([]string{
			r.Date,
			formatNumeric(r.Open),
			formatNumeric(r.Close),
			formatNumeric(r.High),
			formatNumeric(r.Low),
			formatNumeric(r.Volume),
		})
	}

	table.Render()
	return display.String()
}

func formatNumeric(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
