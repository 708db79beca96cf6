package lut

import (
	"fmt"
	"os"
	"path/filepath"

	digest "github.com/opencontainers/go-digest"
)

// ArtifactMode is the permission SaveFile gives artifacts.
const ArtifactMode os.FileMode = 0o644

// SaveFile encodes t and writes it to path, returning the artifact digest.
//
// An existing artifact at path is replaced atomically, and parent directories
// are created as needed.
func SaveFile(path string, t *Table, opts ...EncodeOption) (digest.Digest, error) {
	data, err := Encode(t, opts...)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("create artifact directory: %w", err)
	}
	if err := writeArtifact(path, data); err != nil {
		return "", fmt.Errorf("write artifact: %w", err)
	}
	return Digest(data), nil
}

// LoadFile reads and decodes an artifact written by SaveFile.
func LoadFile(path string, opts ...DecodeOption) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := Decode(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return t, nil
}

// writeArtifact replaces path with data via a synced sibling temp file, so
// path holds either the old artifact or the complete new one.
func writeArtifact(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := tmp.Chmod(ArtifactMode); err != nil { //nolint:gosec // artifacts are world-readable
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return os.Rename(tmp.Name(), path)
}
