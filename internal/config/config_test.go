package config

import (
	"path/filepath"
	"testing"
)

func TestDataDirHonorsOverride(t *testing.T) {
	t.Setenv("CARDBOX_HOME", "/tmp/boxes")
	if got := DataDir(); got != "/tmp/boxes" {
		t.Errorf("DataDir() = %q, want /tmp/boxes", got)
	}
}

func TestDataDirFallsBackToXDG(t *testing.T) {
	t.Setenv("CARDBOX_HOME", "")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	want := filepath.Join("/tmp/xdg", "cardbox")
	if got := DataDir(); got != want {
		t.Errorf("DataDir() = %q, want %q", got, want)
	}
}

func TestStatePathUnderDataDir(t *testing.T) {
	t.Setenv("CARDBOX_HOME", "/tmp/boxes")
	if got := StatePath(); got != filepath.Join("/tmp/boxes", "cards.json") {
		t.Errorf("StatePath() = %q", got)
	}
}

func TestExpandHome(t *testing.T) {
	if got := ExpandHome("/absolute/path"); got != "/absolute/path" {
		t.Errorf("ExpandHome(absolute) = %q", got)
	}
	got := ExpandHome("~/notes")
	if got == "~/notes" {
		t.Errorf("ExpandHome left ~ unresolved")
	}
	if filepath.Base(got) != "notes" {
		t.Errorf("ExpandHome(~/notes) = %q", got)
	}
}
