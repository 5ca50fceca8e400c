package controllers

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// FlexibleTime accepts RFC 3339 timestamps as well as bare dates and
// zone-less datetimes, which are taken as UTC. A blank string, as sent by an
// empty form date field, decodes to the zero time and means "no date".
type FlexibleTime struct {
	time.Time
}

var flexibleLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func (ft *FlexibleTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		ft.Time = time.Time{}
		return nil
	}
	for _, layout := range flexibleLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			ft.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q", raw)
}

func (ft FlexibleTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(ft.Time)
}

// Ptr returns nil for a nil receiver or a blank date, so optional fields map
// straight onto nullable columns.
func (ft *FlexibleTime) Ptr() *time.Time {
	if ft == nil || ft.IsZero() {
		return nil
	}
	t := ft.Time
	return &t
}
