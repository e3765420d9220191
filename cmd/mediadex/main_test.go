package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mediadex/internal/importer"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	cfgPath := filepath.Join(base, "config.toml")
	content := `
[paths]
data_dir = "` + filepath.Join(base, "data") + `"
log_dir = "` + filepath.Join(base, "logs") + `"
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return cfgPath
}

func writeExport(t *testing.T, header string, rows ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	content := header + "\n" + strings.Join(rows, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write export: %v", err)
	}
	return path
}

const fullHeader = "show_id,type,title,director,cast,country,date_added,release_year,rating,duration,listed_in"

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestImportCommandReportsCounts(t *testing.T) {
	cfgPath := writeTestConfig(t)
	export := writeExport(t, fullHeader,
		`s1,Movie,Dark Waters,Todd Haynes,"Mark Ruffalo, Anne Hathaway",United States,"September 24, 2021",2019,PG-13,126 min,Dramas`,
		`s2,TV Show,Seaside Hotel,,Amalie Dollerup,"Denmark, Germany","Sep 24, 2021",2013,TV-14,4 Seasons,"TV Dramas, International TV Shows"`,
	)

	out, err := runCommand(t, "--config", cfgPath, "import", export)
	if err != nil {
		t.Fatalf("import failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Rows examined: 2. Titles created: 2.") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "New country rows: 2") {
		t.Fatalf("expected entity creation counts:\n%s", out)
	}
}

func TestImportCommandHonorsLimit(t *testing.T) {
	cfgPath := writeTestConfig(t)
	export := writeExport(t, fullHeader,
		"s1,Movie,A,,,,,2020,,,",
		"s2,Movie,B,,,,,2020,,,",
		"s3,Movie,C,,,,,2020,,,",
	)

	out, err := runCommand(t, "--config", cfgPath, "import", export, "--limit", "1")
	if err != nil {
		t.Fatalf("import failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Rows examined: 1. Titles created: 1.") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestImportCommandRejectsMissingColumn(t *testing.T) {
	cfgPath := writeTestConfig(t)
	header := "show_id,type,title,director,cast,country,date_added,release_year,duration,listed_in"
	export := writeExport(t, header, "s1,Movie,No Rating,,,,,2020,,")

	_, err := runCommand(t, "--config", cfgPath, "import", export)
	var missing *importer.MissingColumnsError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingColumnsError, got %v", err)
	}
	if !strings.Contains(err.Error(), "rating") {
		t.Fatalf("error should name the missing column: %v", err)
	}
}

func TestImportCommandRejectsMissingFile(t *testing.T) {
	cfgPath := writeTestConfig(t)
	if _, err := runCommand(t, "--config", cfgPath, "import", filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("expected error for missing export")
	}
}

func TestImportCommandRejectsNegativeLimit(t *testing.T) {
	cfgPath := writeTestConfig(t)
	export := writeExport(t, fullHeader, "s1,Movie,A,,,,,2020,,,")
	if _, err := runCommand(t, "--config", cfgPath, "import", export, "--limit", "-1"); err == nil {
		t.Fatal("expected error for negative limit")
	}
}

func TestReportCommandPrintsAggregates(t *testing.T) {
	cfgPath := writeTestConfig(t)
	export := writeExport(t, fullHeader,
		`s1,Movie,Alpha,,Zoe Park,United States,,2020,,,Dramas`,
	)
	if out, err := runCommand(t, "--config", cfgPath, "import", export); err != nil {
		t.Fatalf("import failed: %v\n%s", err, out)
	}

	out, err := runCommand(t, "--config", cfgPath, "report")
	if err != nil {
		t.Fatalf("report failed: %v\n%s", err, out)
	}
	for _, want := range []string{"Table counts", "United States", "Dramas", "Zoe Park"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}
