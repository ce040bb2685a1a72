package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

var timeLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	time.DateOnly,
}

// parseTimeArg accepts RFC3339, a local date with optional minutes, or a
// bare HH:MM meaning today in loc.
func parseTimeArg(s string, now time.Time, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.UTC(), nil
		}
	}
	if clock, err := time.Parse("15:04", s); err == nil {
		y, m, d := now.In(loc).Date()
		return time.Date(y, m, d, clock.Hour(), clock.Minute(), 0, 0, loc).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q (use RFC3339, YYYY-MM-DD HH:MM or HH:MM)", s)
}

// timeValue is a pflag.Value for instants; it stays nil until set.
type timeValue struct {
	app *App
	t   *time.Time
}

var _ pflag.Value = (*timeValue)(nil)

func (v *timeValue) String() string {
	if v.t == nil {
		return ""
	}
	return v.t.Format(time.RFC3339)
}

func (v *timeValue) Set(s string) error {
	t, err := parseTimeArg(s, v.app.now(), v.app.location())
	if err != nil {
		return err
	}
	v.t = &t
	return nil
}

func (v *timeValue) Type() string { return "time" }

func (v *timeValue) Ptr() *time.Time { return v.t }

func addTimeFlag(fs *pflag.FlagSet, app *App, name, usage string) *timeValue {
	v := &timeValue{app: app}
	fs.Var(v, name, usage)
	return v
}
