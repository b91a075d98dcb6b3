package daily

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Divyasree00/lexicon/internal/models"
	"github.com/xuri/excelize/v2"
)

// LoadPools reads custom word pools from an .xlsx or .csv file with two
// columns: tier, word. A header row naming the first column "tier" is
// skipped. The result still has to pass NewSelectorWithPools.
func LoadPools(path string) (map[models.Tier][]string, error) {
	var (
		rows [][]string
		err  error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		rows, err = readCSV(path)
	case ".xlsx":
		rows, err = readExcel(path)
	default:
		return nil, fmt.Errorf("unsupported pool file format %q", ext)
	}
	if err != nil {
		return nil, err
	}

	pools := make(map[models.Tier][]string)
	for i, row := range rows {
		if len(row) < 2 {
			continue
		}
		tier := models.Tier(strings.ToLower(strings.TrimSpace(row[0])))
		word := strings.TrimSpace(row[1])
		if i == 0 && string(tier) == "tier" {
			continue
		}
		if word == "" {
			continue
		}
		if !tier.Valid() {
			return nil, fmt.Errorf("unknown tier %q in row %d", row[0], i+1)
		}
		pools[tier] = append(pools[tier], word)
	}

	return pools, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pool file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read pool file: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func readExcel(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pool file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("pool file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read pool sheet: %w", err)
	}
	return rows, nil
}
