package catalog

import (
	"FolioScale/gradient"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeCatalogFile(t *testing.T, contents string) string {
	t.Helper()
	fileName := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(fileName, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return fileName
}

func TestLoad(t *testing.T) {
	fileName := writeCatalogFile(t, `[
		{"Name": "Folio 101", "Lab": {"L": 22.36, "A": -5.84, "B": -0.81}},
		{"Name": "Folio 215", "Lab": {"L": 92.52, "A": 1.54, "B": -0.82}}
	]`)

	c, err := Load(fileName)
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Error("Load(\"\") should fail")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Load of a missing file should fail")
	}
	if _, err := Load(writeCatalogFile(t, `{not json`)); err == nil {
		t.Error("Load of malformed json should fail")
	}
}

func TestClosest(t *testing.T) {
	c := New([]Entry{
		{Name: "Dark Slate", Lab: gradient.LabColor{L: 22, A: -6, B: -1}},
		{Name: "Mist", Lab: gradient.LabColor{L: 61, A: -2, B: -1}},
		{Name: "Chalk", Lab: gradient.LabColor{L: 93, A: 1, B: -1}},
	})

	tests := []struct {
		target gradient.LabColor
		want   string
	}{
		{gradient.LabColor{L: 22.36, A: -5.84, B: -0.81}, "Dark Slate"},
		{gradient.LabColor{L: 60, A: 0, B: 0}, "Mist"},
		{gradient.LabColor{L: 92.52, A: 1.54, B: -0.82}, "Chalk"},
	}
	for _, tt := range tests {
		match, err := c.Closest(tt.target)
		if err != nil {
			t.Fatal(err)
		}
		if match.Name != tt.want {
			t.Errorf("Closest(%s) = %q, want %q", tt.target, match.Name, tt.want)
		}
	}
}

func TestClosestDistance(t *testing.T) {
	entry := Entry{Name: "Only", Lab: gradient.LabColor{L: 50, A: 10, B: 10}}
	c := New([]Entry{entry})

	match, err := c.Closest(entry.Lab)
	if err != nil {
		t.Fatal(err)
	}
	want := Match{Name: "Only", Lab: entry.Lab, DeltaE: 0}
	if diff := cmp.Diff(want, match); diff != "" {
		t.Errorf("Closest mismatch (-want +got):\n%s", diff)
	}
}

func TestClosestTieIsStable(t *testing.T) {
	shared := gradient.LabColor{L: 40, A: 3, B: -7}
	c := New([]Entry{
		{Name: "First", Lab: shared},
		{Name: "Second", Lab: shared},
	})

	match, err := c.Closest(shared)
	if err != nil {
		t.Fatal(err)
	}
	if match.Name != "First" {
		t.Errorf("tie resolved to %q, want the earliest entry", match.Name)
	}
}

func TestClosestEmptyCatalog(t *testing.T) {
	c := New(nil)
	if _, err := c.Closest(gradient.LabColor{L: 50}); err == nil {
		t.Error("Closest on an empty catalog should fail")
	}
}
