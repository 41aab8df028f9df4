package cv

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string // "" means nil expected
	}{
		{"January 2020", "2020-01-01"},
		{"Jan 2015", "2015-01-01"},
		{"01/2020", "2020-01-01"},
		{"09-2018", "2018-09-01"},
		{"2016", "2016-01-01"},
		{"  Mar 2021  ", "2021-03-01"},
		{"Present", ""},
		{"to date", ""},
		{"not a date", ""},
		{"2014-2018", ""}, // year range, not a single date
		{"", ""},
	}

	for _, tt := range tests {
		got := ParseDate(tt.in)
		if tt.want == "" {
			if got != nil {
				t.Errorf("ParseDate(%q) = %v, want nil", tt.in, got)
			}
			continue
		}
		if got == nil {
			t.Fatalf("ParseDate(%q) = nil, want %s", tt.in, tt.want)
		}
		if got.Format("2006-01-02") != tt.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.in, got.Format("2006-01-02"), tt.want)
		}
		if got.Location() != time.UTC {
			t.Errorf("ParseDate(%q) not in UTC", tt.in)
		}
	}
}

func TestIsOngoing(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"Present", "current", "NOW", "To Date", "today", "ongoing", "to present", " Present "} {
		if !IsOngoing(token) {
			t.Errorf("IsOngoing(%q) = false, want true", token)
		}
	}
	for _, token := range []string{"Dec 2020", "2019", "presently employed", ""} {
		if IsOngoing(token) {
			t.Errorf("IsOngoing(%q) = true, want false", token)
		}
	}
}
