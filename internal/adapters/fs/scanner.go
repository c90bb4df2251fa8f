// Package fs provides the file system adapter that snapshots a source tree.
package fs

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/k4g4/Personal-Page/internal/core/domain"
	"go.trai.ch/zerr"
)

// Scanner implements ports.Scanner by walking the tree depth-first.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan records the modification time of every regular file under root.
// Directories whose base name is in exclude are not entered, except root itself.
// Symlinks and other non-regular entries below root are ignored; a
// symlinked root itself is followed.
func (s *Scanner) Scan(ctx context.Context, root string, exclude domain.Exclusions) (domain.Snapshot, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrScanFailed.Error()), "root", root)
	}

	// WalkDir does not descend into a symlinked root, so walk its target and
	// record paths under the root as given.
	walkRoot, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrScanFailed.Error()), "root", absRoot)
	}

	snapshot := domain.NewSnapshot()
	walkErr := filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrDirReadFailed.Error()), "path", path)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if d.IsDir() {
			if path != walkRoot && exclude.Excludes(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrFileInfoFailed.Error()), "path", path)
		}

		rel, err := filepath.Rel(walkRoot, path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrScanFailed.Error()), "path", path)
		}
		snapshot.Record(domain.FileTimestamp{Path: filepath.Join(absRoot, rel), ModTime: info.ModTime().Unix()})
		return nil
	})
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if walkErr != nil {
		return nil, zerr.With(zerr.Wrap(walkErr, domain.ErrScanFailed.Error()), "root", absRoot)
	}

	return snapshot, nil
}
