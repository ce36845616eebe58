package services

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"github.com/juanmackie/Options-Calendar-Spread-Screener/src/models"
)

// ExportVerdictsCSV writes the ranked verdicts, passing and rejected, to a
// timestamped CSV under outDir and returns the path.
func ExportVerdictsCSV(outDir string, result *models.ScanResult) (string, error) {
	rows := result.Verdicts.ToDTO()
	rows = append(rows, result.Rejected.ToDTO()...)

	if len(rows) == 0 {
		return "", fmt.Errorf("ExportVerdictsCSV: no spreads to export")
	}

	filename := fmt.Sprintf("calendar-spreads-%s.csv", result.StartedAt.Format("20060102_150405"))
	outPath := filepath.Join(outDir, filename)

	dir := filepath.Dir(outPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("ExportVerdictsCSV: failed to create directory: %w", err)
	}

	file, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("ExportVerdictsCSV: error creating CSV file: %w", err)
	}

	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return "", fmt.Errorf("ExportVerdictsCSV: error marshalling file: %w", err)
	}

	log.Infof("Exported %d spreads to %s", len(rows), outPath)

	return outPath, nil
}
