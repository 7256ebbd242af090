// Package identity defines content-addressable file identity: two files are
// the same filing when their sizes and SHA-256 digests match.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// Digest identifies a file's content by size and SHA-256 hash.
type Digest struct {
	Size   int64
	SHA256 string // lowercase hex
}

// DigestFile computes the content digest of the file at path.
func DigestFile(path string) (Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return Digest{}, fmt.Errorf("digest %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Digest{}, fmt.Errorf("digest %s: %w", path, err)
	}

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return Digest{}, fmt.Errorf("digest %s: %w", path, err)
	}

	return Digest{
		Size:   info.Size(),
		SHA256: hex.EncodeToString(h.Sum(nil)),
	}, nil
}

// Identical reports whether the files at a and b have identical content.
// Size is compared first; hashes are only computed when sizes match.
// A size+hash match is treated as identity (no false negatives).
func Identical(a, b string) (bool, error) {
	infoA, err := os.Stat(a)
	if err != nil {
		return false, fmt.Errorf("compare %s: %w", a, err)
	}
	infoB, err := os.Stat(b)
	if err != nil {
		return false, fmt.Errorf("compare %s: %w", b, err)
	}
	if infoA.Size() != infoB.Size() {
		return false, nil
	}

	digestA, err := DigestFile(a)
	if err != nil {
		return false, err
	}
	digestB, err := DigestFile(b)
	if err != nil {
		return false, err
	}
	return digestA.SHA256 == digestB.SHA256, nil
}
