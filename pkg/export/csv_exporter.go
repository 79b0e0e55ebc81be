package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Dataset defines tabular export content.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// CSVExporter renders Dataset records into CSV bytes and parses them back.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render produces CSV encoded bytes for the dataset.
func (e *CSVExporter) Render(data Dataset) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("csv requires at least one header")
	}
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write(data.Headers); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	for _, row := range data.Rows {
		record := make([]string, len(data.Headers))
		for i, header := range data.Headers {
			record[i] = row[header]
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// Parse reads CSV bytes back into a Dataset. The first record becomes the
// header row; every following record becomes a header-keyed row map.
func (e *CSVExporter) Parse(raw []byte) (Dataset, error) {
	reader := csv.NewReader(bytes.NewReader(raw))
	records, err := reader.ReadAll()
	if err != nil {
		return Dataset{}, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return Dataset{}, fmt.Errorf("csv has no header row")
	}

	data := Dataset{Headers: records[0]}
	for _, record := range records[1:] {
		row := make(map[string]string, len(data.Headers))
		for i, header := range data.Headers {
			if i < len(record) {
				row[header] = record[i]
			}
		}
		data.Rows = append(data.Rows, row)
	}
	return data, nil
}
