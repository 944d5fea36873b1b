package hashio

import (
	"encoding/hex"
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("io error") }

func TestSum(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		algorithm string
		expected  string
		err       error
	}{
		{
			name:      "sum_default_md5",
			algorithm: "",
			expected:  "5eb63bbbe01eeed093cb22bb8f5acdc3",
		},
		{
			name:      "sum_sha1",
			algorithm: "SHA1",
			expected:  "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed",
		},
		{
			name:      "sum_sha256",
			algorithm: "sha256",
			expected:  "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
		},
		{
			name:      "sum_unknown",
			algorithm: "crc32",
			err:       ErrUnknownAlgorithm,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			newHash, err := Algorithm(tc.algorithm)
			if diff := cmp.Diff(tc.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("mismatch (-want, +got):\n%s", diff)
			}

			if err != nil {
				return
			}

			sum, err := Sum(strings.NewReader("hello world"), newHash)
			if err != nil {
				t.Fatalf("sum: %v", err)
			}

			if diff := cmp.Diff(tc.expected, hex.EncodeToString(sum)); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestSum_ReadError(t *testing.T) {
	t.Parallel()

	newHash, _ := Algorithm("md5")
	if _, err := Sum(failingReader{}, newHash); err == nil {
		t.Errorf("got nil error, want read error")
	}
}

func TestFileSum(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"unibank.html": &fstest.MapFile{Data: []byte("hello world")},
	}

	newHash, _ := Algorithm("md5")

	sum, err := FileSum(fsys, "unibank.html", newHash)
	if err != nil {
		t.Fatalf("file sum: %v", err)
	}

	if diff := cmp.Diff("5eb63bbbe01eeed093cb22bb8f5acdc3", hex.EncodeToString(sum)); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}

	if _, err := FileSum(fsys, "idbank.html", newHash); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got %v, want %v", err, fs.ErrNotExist)
	}
}
