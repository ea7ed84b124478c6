package clock

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSnapshot_Formatting(t *testing.T) {
	at := time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC)
	snap := snapshot(at, "Monday, 02 January 2006")

	if snap.Hour != 15 || snap.Hour12 != 3 || !snap.PM {
		t.Fatalf("bad hour fields: %+v", snap)
	}
	if got := snap.FormatTime(24, true); got != "15:04:05" {
		t.Fatalf("24h: got %q", got)
	}
	if got := snap.FormatTime(12, false); got != "03:04" {
		t.Fatalf("12h: got %q", got)
	}
	if snap.Suffix(12) != " PM" || snap.Suffix(24) != "" {
		t.Fatalf("bad suffix")
	}
	if snap.Date != "Saturday, 09 March 2024" {
		t.Fatalf("bad date line %q", snap.Date)
	}
}

func TestSnapshot_MidnightAndNoon(t *testing.T) {
	mid := snapshot(time.Date(2024, 1, 1, 0, 30, 0, 0, time.UTC), "2006")
	if mid.Hour12 != 12 || mid.PM {
		t.Fatalf("midnight must be 12 AM, got %+v", mid)
	}
	noon := snapshot(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), "2006")
	if noon.Hour12 != 12 || !noon.PM {
		t.Fatalf("noon must be 12 PM, got %+v", noon)
	}
}

func TestZoneTime_UnknownZone(t *testing.T) {
	if _, ok := ZoneTime("Nowhere/Nowhen", 24, true); ok {
		t.Fatalf("unknown zone must yield no value")
	}
}

func TestZoneTime_UTC(t *testing.T) {
	s, ok := ZoneTime("UTC", 24, false)
	if !ok {
		t.Fatalf("UTC must resolve")
	}
	if len(s) != len("15:04") {
		t.Fatalf("unexpected format %q", s)
	}
}

func TestReadBattery(t *testing.T) {
	dir := t.TempDir()
	bat := filepath.Join(dir, "BAT0")
	if err := os.MkdirAll(bat, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(bat, "capacity"), []byte("87\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(bat, "status"), []byte("Charging\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	b, ok := readBattery(dir)
	if !ok {
		t.Fatalf("expected a battery reading")
	}
	if b.Percent != 87 || !b.Charging {
		t.Fatalf("bad reading %+v", b)
	}
}

func TestReadBattery_NoBattery(t *testing.T) {
	if _, ok := readBattery(t.TempDir()); ok {
		t.Fatalf("empty dir must yield no battery")
	}
	if _, ok := readBattery(filepath.Join(t.TempDir(), "missing")); ok {
		t.Fatalf("missing dir must yield no battery")
	}
}
