package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"brewCompass/domain"
)

// Columns that must be present in the header. Description columns are
// optional and default to empty strings.
var requiredColumns = []string{
	"name", "origin", "roast",
	"agtron", "aroma", "acid", "body", "flavor", "aftertaste",
	"est_price",
}

type CatalogRepository struct {
	path string
}

func NewCatalogRepository(path string) *CatalogRepository {
	return &CatalogRepository{
		path: path,
	}
}

// FindAll reads every row of the catalog CSV. Header names are matched
// case-insensitively; missing required columns fail the load.
func (r *CatalogRepository) FindAll(ctx context.Context) ([]domain.CoffeeRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // ragged rows are cleaned downstream

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("catalog file is missing columns: %s", strings.Join(missing, ", "))
	}

	field := func(record []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	var rows []domain.CoffeeRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog row: %w", err)
		}

		rows = append(rows, domain.CoffeeRow{
			Name:       field(record, "name"),
			Origin:     field(record, "origin"),
			Roast:      field(record, "roast"),
			Agtron:     field(record, "agtron"),
			Aroma:      field(record, "aroma"),
			Acid:       field(record, "acid"),
			Body:       field(record, "body"),
			Flavor:     field(record, "flavor"),
			Aftertaste: field(record, "aftertaste"),
			EstPrice:   field(record, "est_price"),
			Desc1:      field(record, "desc_1"),
			Desc2:      field(record, "desc_2"),
			Desc3:      field(record, "desc_3"),
		})
	}

	return rows, nil
}
