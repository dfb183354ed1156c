package task

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input   string
		want    Date
		wantErr bool
	}{
		{"2024-05-25", NewDate(2024, time.May, 25), false},
		{"2024-02-29", NewDate(2024, time.February, 29), false},
		{"2023-02-29", Date{}, true},
		{"2024-5-25", Date{}, true},
		{"", Date{}, true},
		{"2024-05-25T10:00:00Z", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("expected *ParseError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDateString(t *testing.T) {
	if got := NewDate(987, time.March, 4).String(); got != "0987-03-04" {
		t.Errorf("got %q", got)
	}
}

func TestDateCompare(t *testing.T) {
	a := NewDate(2024, time.May, 25)
	b := NewDate(2024, time.May, 26)
	c := NewDate(2025, time.January, 1)

	if !a.Before(b) || b.Before(a) || a.Equal(b) {
		t.Errorf("%v vs %v ordering wrong", a, b)
	}
	if !b.Before(c) || c.Compare(a) != 1 {
		t.Errorf("%v should be after %v", c, b)
	}
	if a.Compare(NewDate(2024, time.May, 25)) != 0 {
		t.Error("equal dates should compare 0")
	}
	if NewDate(2024, time.April, 30).Compare(NewDate(2024, time.May, 1)) != -1 {
		t.Error("month should dominate day")
	}
}

func TestDateAddDays(t *testing.T) {
	tests := []struct {
		start Date
		n     int
		want  Date
	}{
		{NewDate(2024, time.December, 31), 1, NewDate(2025, time.January, 1)},
		{NewDate(2024, time.March, 1), -1, NewDate(2024, time.February, 29)},
		{NewDate(2024, time.May, 25), 0, NewDate(2024, time.May, 25)},
	}
	for _, tt := range tests {
		if got := tt.start.AddDays(tt.n); got != tt.want {
			t.Errorf("%v.AddDays(%d): got %v, want %v", tt.start, tt.n, got, tt.want)
		}
	}
}

func TestDateOfUsesLocation(t *testing.T) {
	loc := time.FixedZone("east", 10*60*60)
	instant := time.Date(2024, time.May, 24, 20, 0, 0, 0, time.UTC)
	if got := DateOf(instant.In(loc)); got != NewDate(2024, time.May, 25) {
		t.Errorf("got %v, want 2024-05-25", got)
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.May, 25)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"2024-05-25"` {
		t.Errorf("got %s", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back != d {
		t.Errorf("got %v, want %v", back, d)
	}

	if err := json.Unmarshal([]byte(`20240525`), &back); err == nil {
		t.Error("expected error for non-string date")
	}
}

func TestDateValid(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want bool
	}{
		{"regular", NewDate(2024, time.May, 25), true},
		{"leap day", Date{Year: 2024, Month: time.February, Day: 29}, true},
		{"first year", Date{Year: 1, Month: time.January, Day: 1}, true},
		{"last year", Date{Year: 9999, Month: time.December, Day: 31}, true},
		{"zero", Date{}, false},
		{"five digit year", NewDate(10000, time.January, 1), false},
		{"no such day", Date{Year: 2023, Month: time.February, Day: 29}, false},
		{"month 13", Date{Year: 2024, Month: 13, Day: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.date.Valid(); got != tt.want {
				t.Errorf("%v.Valid(): got %v, want %v", tt.date, got, tt.want)
			}
		})
	}

	if _, err := json.Marshal(Date{}); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("marshal zero date: expected ErrInvalidDate, got %v", err)
	}
}
