package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
)

// ValidateImportSchema checks the whole file before anything is written and
// returns every problem found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	if schema.Subject == "" {
		errs = append(errs, fmt.Errorf("subject is required"))
	}
	if len(schema.AttendanceLog) == 0 {
		errs = append(errs, fmt.Errorf("attendanceLog must contain at least one event"))
	}

	for i, e := range schema.AttendanceLog {
		if _, err := domain.ParseEventKind(e.Kind); err != nil {
			errs = append(errs, fmt.Errorf("attendanceLog[%d].kind: %w", i, err))
		}
		if e.Timestamp == "" {
			errs = append(errs, fmt.Errorf("attendanceLog[%d].timestamp is required", i))
		} else if _, err := time.Parse(time.RFC3339Nano, e.Timestamp); err != nil {
			errs = append(errs, fmt.Errorf("attendanceLog[%d].timestamp: invalid instant %q (expected RFC3339)", i, e.Timestamp))
		}
	}

	return errs
}
