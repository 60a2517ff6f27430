// Copyright (c) 2026 The go-huffarc Authors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of go-huffarc.
//
// go-huffarc is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-huffarc is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-huffarc.  If not, see <https://www.gnu.org/licenses/>.

// Package fileio provides file helpers for the archiver over a
// pluggable filesystem. The encoder reads every source twice, so
// non-seekable inputs are spooled to a temporary file first.
package fileio

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
)

// Open opens path for reading. The returned file is seekable, as the
// encoder's double pass requires.
func Open(fsys afero.Fs, path string) (afero.File, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

// Create creates or truncates path for writing.
func Create(fsys afero.Fs, path string) (afero.File, error) {
	f, err := fsys.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, nil
}

// spooled is a temp file that removes itself on Close.
type spooled struct {
	afero.File
	fsys afero.Fs
}

func (s *spooled) Close() error {
	name := s.File.Name()
	err := s.File.Close()
	if rmErr := s.fsys.Remove(name); rmErr != nil && err == nil {
		err = rmErr
	}
	return err
}

// Spool copies r to a temporary file and returns it positioned at
// offset zero. It makes pipes and other non-seekable sources usable
// with the encoder; Close removes the temporary file.
func Spool(fsys afero.Fs, r io.Reader) (io.ReadSeekCloser, error) {
	tmp, err := afero.TempFile(fsys, "", "huffarc-spool-")
	if err != nil {
		return nil, fmt.Errorf("create spool file: %w", err)
	}
	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		_ = fsys.Remove(tmp.Name())
		return nil, fmt.Errorf("spool source: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		_ = fsys.Remove(tmp.Name())
		return nil, fmt.Errorf("rewind spool file: %w", err)
	}
	return &spooled{File: tmp, fsys: fsys}, nil
}

// SafeJoin joins a stored archive entry name onto dir, refusing names
// that would escape it.
func SafeJoin(dir, name string) (string, error) {
	if name == "" || !filepath.IsLocal(name) {
		return "", fmt.Errorf("unsafe entry name %q", name)
	}
	return filepath.Join(dir, name), nil
}
