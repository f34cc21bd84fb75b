package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestInitWritesBothSinks(t *testing.T) {
	prev := log.Logger
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})

	dir := filepath.Join(t.TempDir(), "nested", "logs")
	var console bytes.Buffer

	path, err := Init(Options{Verbose: true, Dir: dir, Console: &console})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if path != filepath.Join(dir, FileName) {
		t.Errorf("log file = %q", path)
	}

	log.Debug().Str("area", "Saddar").Msg("view computed")

	if !strings.Contains(console.String(), "view computed") {
		t.Errorf("console output missing message: %q", console.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"area":"Saddar"`) {
		t.Errorf("file output missing structured field: %s", data)
	}
}

func TestInitLevel(t *testing.T) {
	prevLevel := zerolog.GlobalLevel()
	prev := log.Logger
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})

	if _, err := Init(Options{Dir: t.TempDir(), Console: &bytes.Buffer{}}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Errorf("level = %s, want info", zerolog.GlobalLevel())
	}
}

func TestResolveDirPrefersOverride(t *testing.T) {
	t.Setenv("LOGS_FOLDER", "/from/env")
	if got := resolveDir("/explicit", "/bin/crimedash", nil); got != "/explicit" {
		t.Errorf("resolveDir() = %q", got)
	}
	if got := resolveDir("", "/bin/crimedash", nil); got != "/from/env" {
		t.Errorf("resolveDir() = %q", got)
	}
}
