package template

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"text/template"
	"time"
	_ "time/tzdata"
)

// DefaultTimeLayout is used by formatTime when no layout is given.
const DefaultTimeLayout = "2006-01-02 15:04"

// inputLayouts are tried in order when parsing timestamps.
var inputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
}

// readableIndex turns a zero-based index into a one-based number.
func readableIndex(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n + 1, nil
	case int64:
		return int(n) + 1, nil
	case float64:
		return int(n) + 1, nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("readableIndex: %q is not a number", n)
		}
		return i + 1, nil
	default:
		return 0, fmt.Errorf("readableIndex: unsupported type %T", v)
	}
}

// parseTime accepts an ISO-8601 instant, offset or zoned timestamp. A
// zoned timestamp carries its zone id in brackets, as in
// "2024-05-01T10:00:00+02:00[Europe/Vienna]". Instants in UTC are moved
// into loc; explicit offsets and zones are kept.
func parseTime(s string, loc *time.Location) (time.Time, error) {
	zone := ""
	if i := strings.IndexByte(s, '['); i >= 0 && strings.HasSuffix(s, "]") {
		s, zone = s[:i], s[i+1:len(s)-1]
	}

	var (
		t   time.Time
		err error
	)
	for _, layout := range inputLayouts {
		if t, err = time.Parse(layout, s); err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("could not parse time %q", s)
	}

	switch {
	case zone != "":
		zl, err := time.LoadLocation(zone)
		if err != nil {
			return time.Time{}, fmt.Errorf("unknown time zone %q", zone)
		}
		return t.In(zl), nil
	case t.Location() == time.UTC && loc != nil:
		return t.In(loc), nil
	}
	return t, nil
}

// formatTimeFunc binds formatTime to a default location.
func formatTimeFunc(loc *time.Location) func(v any, layout ...string) (string, error) {
	return func(v any, layout ...string) (string, error) {
		if len(layout) > 1 {
			return "", fmt.Errorf("formatTime: too many arguments")
		}
		out := DefaultTimeLayout
		if len(layout) == 1 {
			out = layout[0]
		}

		var t time.Time
		switch val := v.(type) {
		case nil:
			return "", nil
		case time.Time:
			t = val
			if loc != nil {
				t = t.In(loc)
			}
		case string:
			parsed, err := parseTime(val, loc)
			if err != nil {
				return "", fmt.Errorf("formatTime: %w", err)
			}
			t = parsed
		default:
			return "", fmt.Errorf("formatTime: unsupported type %T", v)
		}
		return t.Format(out), nil
	}
}

// escape makes data safe to splice into markup text or attribute values.
func escape(v any) (string, error) {
	var sb strings.Builder
	if err := xml.EscapeText(&sb, []byte(fmt.Sprint(v))); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func defaultFuncs(loc *time.Location) template.FuncMap {
	return template.FuncMap{
		"readableIndex": readableIndex,
		"formatTime":    formatTimeFunc(loc),
		"escape":        escape,
		"upper":         strings.ToUpper,
		"lower":         strings.ToLower,
	}
}
