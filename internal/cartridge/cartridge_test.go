package cartridge

import (
	"archive/tar"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func makeGame(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "scripts"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "scripts", "main.lua"), []byte("function tick() end"), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestPackThenExtractIntoTemp(t *testing.T) {
	bundle := filepath.Join(t.TempDir(), "snake.luag")
	if err := Pack(makeGame(t), bundle); err != nil {
		t.Fatalf("pack: %v", err)
	}
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	folder, err := s.Extract(bundle, "")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(folder, "scripts", "main.lua"))
	if err != nil || string(data) != "function tick() end" {
		t.Fatalf("unexpected script %q err=%v", data, err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := os.Stat(folder); !os.IsNotExist(err) {
		t.Fatalf("temp folder should be removed on close, stat err=%v", err)
	}
}

func TestExtractMissingBundle(t *testing.T) {
	s, _ := NewStore(t.TempDir())
	_, err := s.Extract(filepath.Join(t.TempDir(), "nope.luag"), "")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestExtractRefusesExistingDest(t *testing.T) {
	bundle := filepath.Join(t.TempDir(), "template.luag")
	if err := Pack(makeGame(t), bundle); err != nil {
		t.Fatalf("pack: %v", err)
	}
	s, _ := NewStore(t.TempDir())
	dest := t.TempDir()
	marker := filepath.Join(dest, "keep.txt")
	os.WriteFile(marker, []byte("mine"), 0o644)
	if _, err := s.Extract(bundle, dest); !errors.Is(err, ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}
	if data, _ := os.ReadFile(marker); string(data) != "mine" {
		t.Fatalf("existing folder was modified")
	}
}

func TestExtractIntoNewDest(t *testing.T) {
	bundle := filepath.Join(t.TempDir(), "template.luag")
	if err := Pack(makeGame(t), bundle); err != nil {
		t.Fatalf("pack: %v", err)
	}
	s, _ := NewStore(t.TempDir())
	dest := filepath.Join(t.TempDir(), "userdata")
	got, err := s.Extract(bundle, dest)
	if err != nil || got != dest {
		t.Fatalf("extract: got %q err=%v", got, err)
	}
	if _, err := os.Stat(filepath.Join(dest, "scripts", "main.lua")); err != nil {
		t.Fatalf("script not extracted: %v", err)
	}
	s.Close()
	if _, err := os.Stat(dest); err != nil {
		t.Fatalf("explicit destinations must survive close: %v", err)
	}
}

func TestExtractRejectsEscapingEntries(t *testing.T) {
	bundle := filepath.Join(t.TempDir(), "evil.luag")
	f, err := os.Create(bundle)
	if err != nil {
		t.Fatal(err)
	}
	tw := tar.NewWriter(f)
	body := []byte("x")
	tw.WriteHeader(&tar.Header{Name: "../escape.txt", Mode: 0o644, Size: int64(len(body)), Typeflag: tar.TypeReg})
	tw.Write(body)
	tw.Close()
	f.Close()

	s, _ := NewStore(t.TempDir())
	dest := filepath.Join(t.TempDir(), "out")
	if _, err := s.Extract(bundle, dest); !errors.Is(err, ErrUnsafe) {
		t.Fatalf("expected ErrUnsafe, got %v", err)
	}
	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Fatalf("failed extraction must not leave the destination behind")
	}
}
