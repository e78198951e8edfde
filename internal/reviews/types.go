package reviews

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DisplayLayout is the card timestamp format ("Mar 4, 2025, 09:30 PM").
const DisplayLayout = "Jan 2, 2006, 03:04 PM"

// ID is an opaque review identifier. The backend may send it as a JSON
// string or a JSON number; both decode to the same textual form.
type ID string

// UnmarshalJSON implements custom JSON unmarshaling for ID
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("unable to parse review id: %s", string(data))
	}
	*id = ID(n.String())
	return nil
}

// Review is one user-submitted rating/comment record for an app.
type Review struct {
	ID        ID     `json:"id"`
	Author    string `json:"author,omitempty"`
	Rating    int    `json:"rating"`
	Title     string `json:"title,omitempty"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// UnmarshalJSON accepts any JSON number for rating. Fractional values are
// truncated toward zero; null leaves it at 0.
func (r *Review) UnmarshalJSON(data []byte) error {
	type plain Review
	aux := struct {
		*plain
		Rating json.RawMessage `json:"rating"`
	}{plain: (*plain)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	r.Rating = 0
	raw := bytes.TrimSpace(aux.Rating)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return fmt.Errorf("unable to parse review rating: %s", string(raw))
	}
	if i, err := n.Int64(); err == nil {
		r.Rating = int(i)
		return nil
	}
	f, err := n.Float64()
	if err != nil {
		return fmt.Errorf("unable to parse review rating: %s", string(raw))
	}
	r.Rating = int(f)
	return nil
}

// Layouts carrying an offset, plus the date-only form, which is read as UTC.
var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// Date-time layouts without an offset are wall-clock time in the display
// location.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseTimestamp parses a created_at value in any of the formats the
// backend is known to produce. Values without an offset are read in loc
// (UTC when loc is nil).
func ParseTimestamp(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse time: %q", raw)
}

// FormatTimestamp renders created_at for display in loc. Values that do
// not parse are shown as they were received.
func FormatTimestamp(raw string, loc *time.Location) string {
	t, err := ParseTimestamp(raw, loc)
	if err != nil {
		if strings.TrimSpace(raw) == "" {
			return "Unknown date"
		}
		return raw
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(DisplayLayout)
}
