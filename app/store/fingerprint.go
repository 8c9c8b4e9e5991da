package store

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/minio/highwayhash"
)

// fingerprintKey is the fixed 32-byte HighwayHash key for database
// fingerprints. Hardcoded so the same file always fingerprints the same
// way across sessions.
var fingerprintKey = []byte("jobsdb-snapshot-fingerprint-key!")

// Fingerprint calculates a HighwayHash of the database file content. The
// fingerprint participates in every cache key, so a changed database can
// never serve stale cached results. Under WAL journaling fresh writes
// live in the -wal sidecar until checkpoint, so that file is folded in
// as well when present.
func Fingerprint(path string) (string, error) {
	if len(fingerprintKey) != 32 {
		return "", fmt.Errorf("hash key must be exactly 32 bytes, got %d", len(fingerprintKey))
	}

	hash, err := highwayhash.New(fingerprintKey)
	if err != nil {
		return "", fmt.Errorf("failed to create hash: %w", err)
	}

	if err := hashFile(hash, path); err != nil {
		return "", err
	}
	if _, err := os.Stat(path + "-wal"); err == nil {
		if err := hashFile(hash, path+"-wal"); err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}

func hashFile(h io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(h, f)
	return err
}
