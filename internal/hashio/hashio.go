// Package hashio computes content digests of fixture files and downloaded documents.
package hashio

import (
	"crypto/md5" //nolint
	"crypto/sha1" //nolint
	"crypto/sha256"
	"errors"
	"fmt"
	"hash"
	"io"
	"io/fs"
	"strings"
)

var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

type NewFunc func() hash.Hash

// Algorithm returns the constructor for md5, sha1 or sha256. Empty name selects md5
func Algorithm(name string) (NewFunc, error) {
	switch strings.ToLower(name) {
	case "", "md5":
		return md5.New, nil
	case "sha1":
		return sha1.New, nil
	case "sha256":
		return sha256.New, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
}

// Sum reads r to the end and returns its digest
func Sum(r io.Reader, newHash NewFunc) ([]byte, error) {
	h := newHash()
	if _, err := io.Copy(h, r); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	return h.Sum(nil), nil
}

// FileSum returns the digest of a file. Errors of a missing file match fs.ErrNotExist
func FileSum(fsys fs.FS, name string, newHash NewFunc) ([]byte, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	return Sum(f, newHash)
}
