package scanner

import (
	"crypto/md5"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
)

// Algorithm identifies a single digest algorithm for one HashFile call.
type Algorithm string

const (
	AlgorithmSHA1 Algorithm = "sha1"
	AlgorithmMD5  Algorithm = "md5"
)

// hashChunkSize is the read size for streaming digests. Files are fed to
// the hash in fixed chunks so memory use stays flat regardless of file size.
const hashChunkSize = 4096

// HashFile computes the hex digest of the file at path. An unknown or empty
// algorithm yields an empty digest without error; that is the deliberate
// no-op for "no hashing requested". Read errors are returned to the caller,
// which decides whether they abort anything.
func HashFile(path string, algorithm Algorithm) (string, error) {
	var digest hash.Hash
	switch algorithm {
	case AlgorithmSHA1:
		digest = sha1.New()
	case AlgorithmMD5:
		digest = md5.New()
	default:
		return "", nil
	}

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	buf := make([]byte, hashChunkSize)
	for {
		n, err := file.Read(buf)
		if n > 0 {
			digest.Write(buf[:n])
		}
		if err == io.EOF {
			return hex.EncodeToString(digest.Sum(nil)), nil
		}
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
	}
}
