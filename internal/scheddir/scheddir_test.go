package scheddir

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPaths(t *testing.T) {
	tests := []struct {
		name    string
		workDir string
		got     func(string) string
		want    string
	}{
		{"schedule in cwd", "", SchedulePath, filepath.Join(".schedule", "tasks.json")},
		{"schedule dot", ".", SchedulePath, filepath.Join(".schedule", "tasks.json")},
		{"schedule in project", "/work/proj", SchedulePath, filepath.Join("/work/proj", ".schedule", "tasks.json")},
		{"config in project", "/work/proj", ConfigPath, filepath.Join("/work/proj", ".schedule", "schedule.toml")},
		{"dir in cwd", "", DirPath, ".schedule"},
		{"dir in project", "proj", DirPath, filepath.Join("proj", ".schedule")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got(tt.workDir); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEnsureParent(t *testing.T) {
	root := t.TempDir()
	path := SchedulePath(root)

	if err := EnsureParent(path); err != nil {
		t.Fatalf("EnsureParent: %v", err)
	}
	info, err := os.Stat(DirPath(root))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}

	// Existing directories and bare file names are fine.
	if err := EnsureParent(path); err != nil {
		t.Errorf("second call: %v", err)
	}
	if err := EnsureParent("tasks.json"); err != nil {
		t.Errorf("bare name: %v", err)
	}
}
