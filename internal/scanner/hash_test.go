package scanner

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestHashFile_sha1Known(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}
	digest, err := HashFile(path, AlgorithmSHA1)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	if digest != "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d" {
		t.Errorf("sha1(%q) = %q", "hello", digest)
	}
}

func TestHashFile_md5Known(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}
	digest, err := HashFile(path, AlgorithmMD5)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	if digest != "5d41402abc4b2a76b9719d911017c592" {
		t.Errorf("md5(%q) = %q", "hello", digest)
	}
}

func TestHashFile_unknownAlgorithmIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	os.WriteFile(path, []byte("hello"), 0644)
	digest, err := HashFile(path, Algorithm("none"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if digest != "" {
		t.Errorf("expected empty digest for unknown algorithm, got %q", digest)
	}
}

func TestHashFile_missingFile(t *testing.T) {
	_, err := HashFile(filepath.Join(t.TempDir(), "nope"), AlgorithmSHA1)
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestHashFile_largerThanChunk(t *testing.T) {
	// Force several read iterations so the chunked path is exercised.
	content := bytes.Repeat([]byte("x"), hashChunkSize*3+17)
	path := filepath.Join(t.TempDir(), "big")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	small := filepath.Join(t.TempDir(), "same")
	if err := os.WriteFile(small, content, 0644); err != nil {
		t.Fatal(err)
	}

	first, err := HashFile(path, AlgorithmSHA1)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	second, err := HashFile(small, AlgorithmSHA1)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	if first != second || len(first) != 40 {
		t.Errorf("chunked digests differ or malformed: %q vs %q", first, second)
	}
}
