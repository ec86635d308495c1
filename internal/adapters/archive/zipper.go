// Package archive produces deterministic zip archives of bundle directories
// and content digests over the archive bytes.
package archive

import (
	"archive/zip"
	"bufio"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/opencontainers/go-digest"
	"github.com/xcpack/xcpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// checksumChunkSize is the streaming buffer size for digest computation.
// The archive is never loaded into memory at once.
const checksumChunkSize = 64 * 1024

// Zipper implements ports.Archiver.
type Zipper struct{}

// NewZipper creates a new Zipper.
func NewZipper() *Zipper {
	return &Zipper{}
}

// Zip archives the bundle directory at bundlePath into <bundlePath>.zip.
// Entries are written in sorted path order with zeroed timestamps and
// normalized modes, so identical bundle content always produces identical
// archive bytes and the downstream digest stays stable across reruns.
func (z *Zipper) Zip(bundlePath string) (string, error) {
	files, err := collectFiles(bundlePath)
	if err != nil {
		return "", err
	}
	sort.Strings(files)

	outPath := bundlePath + ".zip"
	out, err := os.Create(outPath) //nolint:gosec // path derived from our own output layout
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create archive"), "path", outPath)
	}
	defer out.Close() //nolint:errcheck // best effort close in defer

	zw := zip.NewWriter(out)
	base := filepath.Base(bundlePath)
	for _, rel := range files {
		if err := writeEntry(zw, bundlePath, base, rel); err != nil {
			zw.Close() //nolint:errcheck,gosec // already failing
			return "", err
		}
	}
	if err := zw.Close(); err != nil {
		return "", zerr.Wrap(err, "failed to finalize archive")
	}
	if err := out.Close(); err != nil {
		return "", zerr.Wrap(err, "failed to flush archive")
	}
	return outPath, nil
}

func collectFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to walk bundle"), "path", root)
	}
	return files, nil
}

func writeEntry(zw *zip.Writer, root, base, rel string) error {
	src := filepath.Join(root, filepath.FromSlash(rel))
	info, err := os.Stat(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat bundle file"), "path", src)
	}

	// Fixed header fields: zero Modified time, mode collapsed to two
	// canonical values. Anything informational beyond executability would
	// leak nondeterminism into the archive bytes.
	hdr := &zip.FileHeader{
		Name:   base + "/" + rel,
		Method: zip.Deflate,
	}
	if info.Mode()&0o111 != 0 {
		hdr.SetMode(0o755)
	} else {
		hdr.SetMode(0o644)
	}

	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return zerr.Wrap(err, "failed to create archive entry")
	}

	f, err := os.Open(src) //nolint:gosec // path from our own walk
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open bundle file"), "path", src)
	}
	defer f.Close() //nolint:errcheck // best effort close in defer

	if _, err := io.Copy(w, f); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write archive entry"), "path", src)
	}
	return nil
}

// Checksum streams the file at path through the canonical digest algorithm
// and returns the lowercase hex encoding without separators.
func (z *Zipper) Checksum(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // path from our own output layout
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open archive"), "path", path)
	}
	defer f.Close() //nolint:errcheck // best effort close in defer

	dgst, err := digest.Canonical.FromReader(bufio.NewReaderSize(f, checksumChunkSize))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to digest archive"), "path", path)
	}
	return dgst.Encoded(), nil
}

var _ ports.Archiver = (*Zipper)(nil)
