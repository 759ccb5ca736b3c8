package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-sac/internal/testutil"
	"github.com/cwbudde/algo-sac/sac"
)

func writeTrace(t *testing.T) string {
	t.Helper()
	tr := testutil.Trace(t, 0.02, 0, []float64{1, 2, 3, 4, 5})
	if err := tr.SetText(sac.Kstnm, "ANMO"); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	path := filepath.Join(t.TempDir(), "in.sac")
	if err := sac.WriteFile(path, tr); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

// values parses the "name value" rows printed for a single file.
func values(out string) map[string]string {
	m := make(map[string]string)
	for _, line := range strings.Split(out, "\n") {
		f := strings.Fields(line)
		if len(f) == 2 {
			m[f[0]] = f[1]
		}
	}
	return m
}

func TestRun_DefaultFields(t *testing.T) {
	path := writeTrace(t)
	var stdout, stderr bytes.Buffer

	if code := run([]string{path}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code: got %d, stderr=%q", code, stderr.String())
	}
	got := values(stdout.String())
	for name, want := range map[string]string{
		"kstnm":  "ANMO",
		"kcmpnm": "-12345",
		"npts":   "5",
		"delta":  "0.02",
		"depmax": "5",
		"depmen": "3",
	} {
		if got[name] != want {
			t.Fatalf("%s: got %q, want %q", name, got[name], want)
		}
	}
}

func TestRun_AllSkipsUnset(t *testing.T) {
	path := writeTrace(t)
	var stdout, stderr bytes.Buffer

	if code := run([]string{"-all", path}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code: got %d, stderr=%q", code, stderr.String())
	}
	got := values(stdout.String())
	if got["kstnm"] != "ANMO" || got["leven"] != "true" || got["nvhdr"] != "6" {
		t.Fatalf("set fields missing: %v", got)
	}
	if _, ok := got["kcmpnm"]; ok {
		t.Fatal("-all printed an unset field")
	}
}

func TestRun_ProcessAndWrite(t *testing.T) {
	path := writeTrace(t)
	out := filepath.Join(t.TempDir(), "out.sac")
	var stdout, stderr bytes.Buffer

	code := run([]string{"-demean", "-fields", "depmen,depmin", "-out", out, path}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code: got %d, stderr=%q", code, stderr.String())
	}
	got := values(stdout.String())
	if got["depmen"] != "0" || got["depmin"] != "-2" {
		t.Fatalf("demeaned header: %v", got)
	}

	back, err := sac.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, back.Data(), []float64{-2, -1, 0, 1, 2}, 0)
}

func TestRun_Errors(t *testing.T) {
	path := writeTrace(t)
	tests := []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{"no files", nil, 2, "Usage"},
		{"unknown field", []string{"-fields", "nope", path}, 2, "unknown header field"},
		{"bad window", []string{"-window", "kaiser", path}, 2, "error"},
		{"two filters", []string{"-lp", "1", "-hp", "2", path}, 2, "mutually exclusive"},
		{"bad bandpass", []string{"-bp", "1", path}, 2, "low,high"},
		{"missing file", []string{filepath.Join(t.TempDir(), "missing.sac")}, 1, "error"},
		{"corner above nyquist", []string{"-lp", "40", path}, 1, "error"},
		{"response without filter", []string{"-response", path}, 2, "-response needs"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tc.args, &stdout, &stderr); code != tc.code {
				t.Fatalf("exit code: got %d, want %d (stderr=%q)", code, tc.code, stderr.String())
			}
			if !strings.Contains(stderr.String(), tc.msg) {
				t.Fatalf("stderr %q does not mention %q", stderr.String(), tc.msg)
			}
		})
	}
}

func TestRun_List(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-list"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code: got %d", code)
	}
	got := values(stdout.String())
	if got["kevnm"] != "text" || got["npts"] != "int" || got["delta"] != "float" {
		t.Fatalf("list output: %v", got)
	}
	if _, ok := got["unused7"]; ok {
		t.Fatal("list shows reserved fields")
	}
}

func TestRun_FilterResponse(t *testing.T) {
	path := writeTrace(t)
	tests := []struct {
		args []string
		want map[string]string
	}{
		{[]string{"-lp", "5", "-response", path}, map[string]string{"db@5": "-3.01"}},
		{[]string{"-hp", "2", "-passes", "2", "-response", path}, map[string]string{"db@2": "-6.02"}},
		{[]string{"-bp", "1,10", "-poles", "4", "-response", path}, map[string]string{"db@1": "-3.01", "db@10": "-3.01"}},
	}

	for _, tc := range tests {
		t.Run(strings.Join(tc.args[:len(tc.args)-1], " "), func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tc.args, &stdout, &stderr); code != 0 {
				t.Fatalf("exit code: got %d, stderr=%q", code, stderr.String())
			}
			got := values(stdout.String())
			for k, v := range tc.want {
				if got[k] != v {
					t.Fatalf("%s: got %q, want %q (all: %v)", k, got[k], v, got)
				}
			}
		})
	}
}
