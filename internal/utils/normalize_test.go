package utils

import "testing"

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"pending", "Pending", true},
		{" TODO ", "Pending", true},
		{"done", "Completed", true},
		{"Completed", "Completed", true},
		{"x", "Completed", true},
		{"in progress", "In progress", true},
		{"", "", false},
		{"   ", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeStatus(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("NormalizeStatus(%q): got (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestNormalizePriority(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"h", "High", true},
		{"HIGH", "High", true},
		{"1", "High", true},
		{"med", "Medium", true},
		{"low", "Low", true},
		{"urgent", "Urgent", true},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizePriority(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("NormalizePriority(%q): got (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestNormalizeRecurrence(t *testing.T) {
	tests := map[string]string{
		"Weekly":    "weekly",
		"week":      "weekly",
		"day":       "daily",
		"annually":  "yearly",
		"month":     "monthly",
		"none":      "",
		"":          "",
		"every 3rd": "every 3rd",
	}
	for input, want := range tests {
		if got := NormalizeRecurrence(input); got != want {
			t.Errorf("NormalizeRecurrence(%q): got %q, want %q", input, got, want)
		}
	}
}

func TestJSONPointerToPath(t *testing.T) {
	tests := map[string]string{
		"":              "",
		"#":             "",
		"/0":            "[0]",
		"/0/due_date":   "[0].due_date",
		"#/tasks/2/id":  "tasks[2].id",
		"/a~1b/c~0d":    "a/b.c~d",
		"/items/10/x/1": "items[10].x[1]",
		"/a/-1":         "a.-1",
	}
	for input, want := range tests {
		if got := JSONPointerToPath(input); got != want {
			t.Errorf("JSONPointerToPath(%q): got %q, want %q", input, got, want)
		}
	}
}
