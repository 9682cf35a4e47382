package config

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestParseStartingRows(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no argument", nil, DefaultRows},
		{"valid", []string{"12"}, 12},
		{"odd size kept", []string{"9"}, 9},
		{"not a number", []string{"big"}, DefaultRows},
		{"too small", []string{"3"}, MinRows},
		{"too large", []string{"400"}, MaxRows},
		{"whitespace", []string{" 14 "}, 14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseStartingRows(tt.args, quietLogger()); got != tt.want {
				t.Fatalf("ParseStartingRows(%v) = %d, want %d", tt.args, got, tt.want)
			}
		})
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := LoadSettings(map[string]string{})
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.LogLevel != "info" || s.AssetsDir != "assets" || s.RecordsPath != "cosmic-mines.db" {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if s.Seed != 0 || s.SkipIntro || s.NoRecords || s.WindowScale != 1 {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	w, h := s.WindowSize()
	if w != ScreenWidth || h != ScreenHeight {
		t.Fatalf("unexpected window size %dx%d", w, h)
	}
}

func TestLoadSettingsFromEnvironment(t *testing.T) {
	s, err := LoadSettings(map[string]string{
		EnvPrefix + "LOG_LEVEL":    "debug",
		EnvPrefix + "SEED":         "1234",
		EnvPrefix + "SKIP_INTRO":   "true",
		EnvPrefix + "NO_RECORDS":   "true",
		EnvPrefix + "WINDOW_SCALE": "0.5",
	})
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.LogLevel != "debug" || s.Seed != 1234 || !s.SkipIntro || !s.NoRecords || s.WindowScale != 0.5 {
		t.Fatalf("unexpected settings: %+v", s)
	}
	if w, _ := s.WindowSize(); w != ScreenWidth/2 {
		t.Fatalf("unexpected width %d", w)
	}
}

func TestLoadSettingsRejectsBadValues(t *testing.T) {
	if _, err := LoadSettings(map[string]string{EnvPrefix + "SEED": "abc"}); err == nil {
		t.Fatal("expected error for non-numeric seed")
	}
	if _, err := LoadSettings(map[string]string{EnvPrefix + "WINDOW_SCALE": "0"}); err == nil {
		t.Fatal("expected error for zero scale")
	}
}
