package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the JSON shape accepted by `punchclock import`. The
// attendanceLog array uses the same event shape the status command emits.
type ImportSchema struct {
	Subject       string        `json:"subject"`
	AttendanceLog []EventImport `json:"attendanceLog"`
}

type EventImport struct {
	Kind      string `json:"kind"`
	Timestamp string `json:"timestamp"`
	Note      string `json:"note,omitempty"`
}

// LoadImportSchema reads and parses an attendance import file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportSchema(data)
}

func ParseImportSchema(data []byte) (*ImportSchema, error) {
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
