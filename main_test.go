package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ByLCY/vita/config"
	"github.com/ByLCY/vita/fonts"
)

func TestPlanJobs(t *testing.T) {
	jobs, err := planJobs([]string{"in/jane.json"}, "out/cv.pdf", "dbg/cv.json", ".pdf")
	if err != nil {
		t.Fatalf("planJobs: %v", err)
	}
	if jobs[0].out != "out/cv.pdf" || jobs[0].debug != "dbg/cv.json" {
		t.Fatalf("single job paths: %+v", jobs[0])
	}

	jobs, err = planJobs([]string{"a/jane.json", "b/max.json"}, "out", "dbg", ".png")
	if err != nil {
		t.Fatalf("planJobs: %v", err)
	}
	if jobs[1].out != filepath.Join("out", "max.png") || jobs[1].debug != filepath.Join("dbg", "max.layout.json") {
		t.Fatalf("multi job paths: %+v", jobs[1])
	}

	if _, err := planJobs([]string{"a/jane.json", "b/jane.json"}, "out", "", ".pdf"); err == nil {
		t.Fatalf("expected collision error")
	}
}

func TestInitValidateRender(t *testing.T) {
	dir := t.TempDir()
	presets := []string{filepath.Join(dir, "jane.json"), filepath.Join(dir, "max.json")}
	for _, p := range presets {
		if err := initPreset(p, ""); err != nil {
			t.Fatalf("initPreset: %v", err)
		}
	}
	if err := initPreset(presets[0], ""); err == nil {
		t.Fatalf("expected error when the preset already exists")
	}
	if err := validatePresets(presets); err != nil {
		t.Fatalf("validatePresets: %v", err)
	}

	s := &config.Settings{Addr: ":8000", Engine: "pdf", Fonts: fonts.Paths{}, MaxUploadMB: 10}
	gen, err := newGenerator(s)
	if err != nil {
		t.Fatalf("newGenerator: %v", err)
	}
	out := filepath.Join(dir, "out")
	jobs, err := planJobs(presets, out, filepath.Join(dir, "debug"), outputExt(s.Engine))
	if err != nil {
		t.Fatalf("planJobs: %v", err)
	}
	if err := renderAll(context.Background(), gen, jobs); err != nil {
		t.Fatalf("renderAll: %v", err)
	}
	for _, j := range jobs {
		data, err := os.ReadFile(j.out)
		if err != nil {
			t.Fatalf("read %s: %v", j.out, err)
		}
		if !bytes.HasPrefix(data, []byte("%PDF-")) {
			t.Fatalf("%s is not a PDF", j.out)
		}
		if _, err := os.Stat(j.debug); err != nil {
			t.Fatalf("debug dump missing: %v", err)
		}
	}
}

func TestValidatePresetsReportsFailures(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"skills": 3}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := validatePresets([]string{bad, filepath.Join(dir, "missing.json")}); err == nil {
		t.Fatalf("expected failure")
	}
}

func TestNewRendererRejectsUnknownEngine(t *testing.T) {
	if _, err := newRenderer("docx", fonts.Default()); err == nil {
		t.Fatalf("expected error")
	}
	if outputExt("preview") != ".png" || outputExt("pdf") != ".pdf" {
		t.Fatalf("unexpected extensions")
	}
}
