package archive

import (
	"os"
	"path/filepath"
	"testing"
)

const testSessionID = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"

func TestStoreRoundTrip(t *testing.T) {
	srcDir := t.TempDir()
	archiveDir := t.TempDir()

	// Create a source transcript
	original := `{"type":"user","message":{"role":"user","content":"hello"}}` + "\n" +
		`{"type":"assistant","message":{"role":"assistant","content":"world"}}` + "\n"

	srcPath := filepath.Join(srcDir, testSessionID+".jsonl")
	if err := os.WriteFile(srcPath, []byte(original), 0o644); err != nil {
		t.Fatal(err)
	}

	archPath, err := Store(srcPath, testSessionID, archiveDir)
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if archPath != ArchivePath(testSessionID, archiveDir) {
		t.Errorf("archive landed at %q, want %q", archPath, ArchivePath(testSessionID, archiveDir))
	}

	// Decompress
	tmpPath, cleanup, err := Decompress(archPath)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	defer cleanup()

	// Verify contents match
	decompressed, err := os.ReadFile(tmpPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(decompressed) != original {
		t.Errorf("decompressed content mismatch\ngot:  %q\nwant: %q", string(decompressed), original)
	}
}

func TestStore_OverwritesExisting(t *testing.T) {
	srcDir := t.TempDir()
	archiveDir := t.TempDir()
	srcPath := filepath.Join(srcDir, testSessionID+".jsonl")

	os.WriteFile(srcPath, []byte("first\n"), 0o644)
	if _, err := Store(srcPath, testSessionID, archiveDir); err != nil {
		t.Fatalf("Store: %v", err)
	}

	os.WriteFile(srcPath, []byte("second\n"), 0o644)
	archPath, err := Store(srcPath, testSessionID, archiveDir)
	if err != nil {
		t.Fatalf("Store again: %v", err)
	}

	tmpPath, cleanup, err := Decompress(archPath)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	defer cleanup()

	data, _ := os.ReadFile(tmpPath)
	if string(data) != "second\n" {
		t.Errorf("archive content = %q, want the rewritten transcript", data)
	}
}

func TestIsArchived(t *testing.T) {
	archiveDir := t.TempDir()

	if IsArchived(testSessionID, archiveDir) {
		t.Error("should not be archived yet")
	}

	// Create a fake archive file
	path := ArchivePath(testSessionID, archiveDir)
	if err := os.WriteFile(path, []byte("fake"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !IsArchived(testSessionID, archiveDir) {
		t.Error("should be archived now")
	}
}

func TestArchivePath(t *testing.T) {
	got := ArchivePath("abc-123", "/talk/.cctalk/archive")
	want := "/talk/.cctalk/archive/abc-123.jsonl.zst"
	if got != want {
		t.Errorf("ArchivePath = %q, want %q", got, want)
	}
}

func TestStore_CreatesArchiveDir(t *testing.T) {
	srcDir := t.TempDir()
	archiveDir := filepath.Join(t.TempDir(), "nested", "archive")

	srcPath := filepath.Join(srcDir, testSessionID+".jsonl")
	os.WriteFile(srcPath, []byte("line\n"), 0o644)

	if _, err := Store(srcPath, testSessionID, archiveDir); err != nil {
		t.Fatalf("Store: %v", err)
	}
	if !IsArchived(testSessionID, archiveDir) {
		t.Error("archive dir was not created")
	}
}

func TestDecompress_MissingArchive(t *testing.T) {
	_, _, err := Decompress(filepath.Join(t.TempDir(), "absent.jsonl.zst"))
	if err == nil {
		t.Fatal("expected error for missing archive")
	}
}
