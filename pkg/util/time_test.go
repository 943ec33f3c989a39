package util

import (
	"testing"
	"time"
)

func TestParseFlexibleDate(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "iso", input: "2024-03-05", want: "2024-03-05"},
		{name: "us", input: "03/05/2024", want: "2024-03-05"},
		{name: "garbage", input: "5th of March", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseFlexibleDate(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %v", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Format(DateFormat) != tc.want {
				t.Errorf("got %s, want %s", got.Format(DateFormat), tc.want)
			}
		})
	}
}

func TestFilenameTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 5, 14, 30, 9, 0, GetDefaultTimezone())
	got := FilenameTimestamp(ts)
	if got != "20240305143009" {
		t.Errorf("got %s, want 20240305143009", got)
	}
	if len(got) != 14 {
		t.Errorf("timestamp length = %d, want 14", len(got))
	}
}
