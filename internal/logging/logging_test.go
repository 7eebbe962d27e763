package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestInitAndLoggingToFile(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "nested", "tally.log")

	if err := Init(logPath, true); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
	})

	LogEvent("hello %s", "world")
	Warnf("could not parse line %d", 3)
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "hello world") {
		t.Fatalf("expected LogEvent content, got: %s", content)
	}
	if !strings.Contains(content, "could not parse line 3") {
		t.Fatalf("expected Warnf content, got: %s", content)
	}
}

func TestLevels(t *testing.T) {
	if err := Init("", false); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	hook := test.NewGlobal()
	t.Cleanup(hook.Reset)

	LogEvent("quiet")
	Debugf("quieter")
	if n := len(hook.AllEntries()); n != 0 {
		t.Fatalf("expected info and debug suppressed without debug, got %d entries", n)
	}

	Warnf("loud")
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.WarnLevel || entry.Message != "loud" {
		t.Fatalf("unexpected entry: %+v", entry)
	}

	if err := Init("", true); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	Debugf("visible %d", 1)
	if entry := hook.LastEntry(); entry == nil || entry.Message != "visible 1" {
		t.Fatalf("expected debug entry, got %+v", entry)
	}
}

func TestCloseWithoutFile(t *testing.T) {
	if err := Init("", false); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if err := Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
}
