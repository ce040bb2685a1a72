package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/google/uuid"
)

// Convert turns a validated schema into events ready for persistence,
// preserving file order. Call ValidateImportSchema first.
func Convert(schema *ImportSchema, now time.Time) (domain.EventLog, error) {
	log := make(domain.EventLog, 0, len(schema.AttendanceLog))
	for i, raw := range schema.AttendanceLog {
		kind, err := domain.ParseEventKind(raw.Kind)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		ts, err := time.Parse(time.RFC3339Nano, raw.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("event %d: parsing timestamp: %w", i, err)
		}
		log = append(log, domain.AttendanceEvent{
			ID:        uuid.New().String(),
			SubjectID: schema.Subject,
			Kind:      kind,
			Timestamp: domain.Truncate(ts.UTC()),
			Note:      raw.Note,
			CreatedAt: now.UTC(),
		})
	}
	return log, nil
}
