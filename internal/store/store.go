// Package store materializes built pages as HTML files, either kept in
// the working directory or staged in a private temp directory for later
// cleanup.
package store

import (
	"os"
	"path/filepath"
	"time"

	"github.com/mithrel/mdview/internal/apperr"
	"github.com/mithrel/mdview/internal/page"
)

// Artifact describes the files written for one display request.
type Artifact struct {
	Paths     []string // in write order
	Primary   string   // the path the display surface opens
	Dir       string   // containing temp dir; empty for kept artifacts
	Transient bool
	CreatedAt time.Time
}

// Store writes pages to disk. The zero value is not usable; call New.
type Store struct {
	workDir string // destination for kept artifacts
	tempDir string // parent for transient staging dirs
}

// New returns a Store writing kept artifacts to workDir and transient
// artifacts under tempDir. Empty values fall back to the current
// directory and the system temp directory.
func New(workDir, tempDir string) *Store {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	if workDir == "" {
		workDir = "."
	}
	return &Store{workDir: workDir, tempDir: tempDir}
}

// Write materializes a page. With keep, files land in the working
// directory under their derived names; a later file with the same
// derived name overwrites an earlier one, which is the documented
// behavior, not an accident. Without keep, each run gets a fresh
// private directory under tempDir, so concurrent runs never collide.
func (s *Store) Write(p page.Page, keep bool) (Artifact, error) {
	dir := s.workDir
	a := Artifact{CreatedAt: time.Now()}
	if !keep {
		tmp, err := os.MkdirTemp(s.tempDir, "mdview-*")
		if err != nil {
			return Artifact{}, &apperr.WriteError{Path: s.tempDir, Err: err}
		}
		dir = tmp
		a.Dir = tmp
		a.Transient = true
	}

	for _, f := range p.Files {
		dst := filepath.Join(dir, f.Name)
		if err := os.WriteFile(dst, f.Data, 0o644); err != nil {
			return Artifact{}, &apperr.WriteError{Path: dst, Err: err}
		}
		a.Paths = append(a.Paths, dst)
	}
	a.Primary = filepath.Join(dir, p.EntryName())
	return a, nil
}
