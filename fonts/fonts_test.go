package fonts

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLoadFallsBackForMissingFiles(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.ttf")
	if err := os.WriteFile(broken, []byte("not a font"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	set, err := Load(Paths{Regular: filepath.Join(dir, "missing.ttf"), Bold: broken})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	for _, role := range Roles {
		f := set.Resolve(role)
		if f == nil || !f.Fallback {
			t.Fatalf("role %s should use the fallback font", role)
		}
		if len(set.Bytes(role)) == 0 {
			t.Fatalf("role %s has no bytes", role)
		}
	}
	if f := set.Resolve(Role("unknown")); f.Role != Regular {
		t.Fatalf("unknown role should resolve to regular, got %s", f.Role)
	}
}

func TestLoadUsesConfiguredFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "body.ttf")
	if err := os.WriteFile(path, fallbackData(Bold), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	set, err := Load(Paths{Regular: path})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if set.Resolve(Regular).Fallback {
		t.Fatalf("regular should come from %s", path)
	}
}

func TestMeasurerMetrics(t *testing.T) {
	m := Default().NewMeasurer()

	w10 := m.Width(Regular, 10, "Lebenslauf")
	w20 := m.Width(Regular, 20, "Lebenslauf")
	if w10 <= 0 {
		t.Fatalf("width must be positive, got %g", w10)
	}
	if w20 < 1.9*w10 || w20 > 2.1*w10 {
		t.Fatalf("width should scale with size: 10pt=%g 20pt=%g", w10, w20)
	}
	if got := m.Width(Regular, 10, ""); got != 0 {
		t.Fatalf("empty text width = %g", got)
	}
	if m.Width(Regular, 10, "ab") <= m.Width(Regular, 10, "a") {
		t.Fatalf("longer text should be wider")
	}

	asc, dsc := m.Ascent(Regular, 10), m.Descent(Regular, 10)
	if asc <= 0 || dsc <= 0 || asc > 12 || dsc > 5 {
		t.Fatalf("implausible metrics asc=%g dsc=%g", asc, dsc)
	}
}

func TestCoversBullet(t *testing.T) {
	m := Default().NewMeasurer()
	if !m.Covers(Symbol, '•') {
		t.Fatalf("fallback symbol font should contain a bullet")
	}
	if m.Covers(Symbol, '\U0001F600') {
		t.Fatalf("fallback font should not contain emoji")
	}
}

func TestLoadAllocatesLittle(t *testing.T) {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	set, err := Load(Paths{})
	runtime.ReadMemStats(&after)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if a := set.Resolve(Regular).AscentPerEm(); a <= 0 || a >= 1.5 {
		t.Fatalf("ascent per em = %v", a)
	}
	const limit = 16 << 20
	if d := after.TotalAlloc - before.TotalAlloc; d > limit {
		t.Fatalf("Load allocated %d MiB, want under %d MiB", d>>20, limit>>20)
	}
}
