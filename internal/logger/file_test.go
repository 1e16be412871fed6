package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileLogger_CreatesRunFileAndSymlink(t *testing.T) {
	dir := t.TempDir()
	logDir := filepath.Join(dir, "logs")

	fl, err := NewFileLoggerWithDir(logDir)
	if err != nil {
		t.Fatalf("NewFileLoggerWithDir: %v", err)
	}
	defer fl.Close()

	fl.LogInfo("scan started")

	if _, err := os.Stat(fl.runFile); err != nil {
		t.Fatalf("run file missing: %v", err)
	}

	latest := filepath.Join(logDir, "latest.log")
	target, err := os.Readlink(latest)
	if err != nil {
		t.Fatalf("latest.log symlink missing: %v", err)
	}
	if target != filepath.Base(fl.runFile) {
		t.Fatalf("symlink target = %q, want %q", target, filepath.Base(fl.runFile))
	}
}

func TestFileLogger_LevelFiltering(t *testing.T) {
	dir := t.TempDir()
	fl, err := NewFileLoggerWithDirAndLevel(dir, "warn")
	if err != nil {
		t.Fatalf("NewFileLoggerWithDirAndLevel: %v", err)
	}
	defer fl.Close()

	fl.LogDebug("should be filtered")
	fl.LogError("should appear")
	fl.Close()

	content, err := os.ReadFile(fl.runFile)
	if err != nil {
		t.Fatalf("read run file: %v", err)
	}
	if strings.Contains(string(content), "should be filtered") {
		t.Fatalf("debug message should have been filtered: %s", content)
	}
	if !strings.Contains(string(content), "should appear") {
		t.Fatalf("error message missing: %s", content)
	}
}

func TestFileLogger_Close_Idempotent(t *testing.T) {
	dir := t.TempDir()
	fl, err := NewFileLoggerWithDir(dir)
	if err != nil {
		t.Fatalf("NewFileLoggerWithDir: %v", err)
	}
	if err := fl.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := fl.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}
