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

// Package huffarc bundles files into a Huffman-coded archive stream and
// losslessly restores them. Each archived file carries its own canonical
// code, its name, and its encoded payload; files are separated in-band,
// so the archive decodes sequentially without random access.
package huffarc

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/huffarc/go-huffarc/archive"
	"github.com/huffarc/go-huffarc/pkg/fileio"
)

// Entry is one named byte stream to archive.
type Entry struct {
	Name string
	Data io.Reader
}

// Write encodes entries into a single archive written to w. Sources
// that cannot seek are spooled to a temporary file for the encoder's
// double pass.
func Write(w io.Writer, entries []Entry) error {
	enc := archive.NewEncoder(w)
	spoolFs := afero.NewMemMapFs()
	for _, e := range entries {
		src, cleanup, err := seekable(spoolFs, e.Data)
		if err != nil {
			return fmt.Errorf("prepare %q: %w", e.Name, err)
		}
		err = enc.Encode(e.Name, src)
		if cerr := cleanup(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("encode %q: %w", e.Name, err)
		}
	}
	return enc.Close()
}

func seekable(spoolFs afero.Fs, r io.Reader) (io.ReadSeeker, func() error, error) {
	noop := func() error { return nil }
	if r == nil {
		return bytes.NewReader(nil), noop, nil
	}
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, noop, nil
	}
	sp, err := fileio.Spool(spoolFs, r)
	if err != nil {
		return nil, nil, err
	}
	return sp, sp.Close, nil
}

// Create archives the named files, in order, into a new archive at
// archivePath. Each entry is stored under the path it was given.
func Create(fsys afero.Fs, archivePath string, paths []string) (err error) {
	out, err := fileio.Create(fsys, archivePath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	enc := archive.NewEncoder(out)
	for _, path := range paths {
		if err := encodePath(enc, fsys, path); err != nil {
			return err
		}
	}
	return enc.Close()
}

func encodePath(enc *archive.Encoder, fsys afero.Fs, path string) error {
	in, err := fileio.Open(fsys, path)
	if err != nil {
		return err
	}
	defer in.Close()
	if err := enc.Encode(path, in); err != nil {
		return fmt.Errorf("archive %s: %w", path, err)
	}
	return nil
}

// Extract restores every entry of the archive at archivePath into
// destDir (the current directory when destDir is empty), creating
// parent directories as needed. Entry names that would escape destDir
// are rejected. It returns the entry names in archive order.
func Extract(fsys afero.Fs, archivePath, destDir string) ([]string, error) {
	in, err := fileio.Open(fsys, archivePath)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	dec := archive.NewDecoder(bufio.NewReader(in))
	var names []string
	for !dec.Done() {
		name, err := extractNext(fsys, dec, destDir)
		if err != nil {
			return names, err
		}
		names = append(names, name)
	}
	return names, nil
}

// extractNext decodes one entry into a temporary file, then moves it to
// its stored name once the name is known.
func extractNext(fsys afero.Fs, dec *archive.Decoder, destDir string) (string, error) {
	// Spill next to the destination so the final rename stays on one
	// filesystem.
	tmpDir := destDir
	if tmpDir == "" {
		tmpDir = "."
	}
	tmp, err := afero.TempFile(fsys, tmpDir, ".huffarc-")
	if err != nil {
		return "", fmt.Errorf("create extraction file: %w", err)
	}
	tmpName := tmp.Name()
	discard := func() {
		tmp.Close()
		_ = fsys.Remove(tmpName)
	}

	bw := bufio.NewWriter(tmp)
	name, err := dec.DecodeNext(bw)
	if err != nil {
		discard()
		return "", err
	}
	if err := bw.Flush(); err != nil {
		discard()
		return "", fmt.Errorf("flush %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = fsys.Remove(tmpName)
		return "", fmt.Errorf("finish %s: %w", name, err)
	}

	target, err := fileio.SafeJoin(destDir, name)
	if err != nil {
		_ = fsys.Remove(tmpName)
		return "", err
	}
	if dir := filepath.Dir(target); dir != "." {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			_ = fsys.Remove(tmpName)
			return "", fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := fsys.Rename(tmpName, target); err != nil {
		_ = fsys.Remove(tmpName)
		return "", fmt.Errorf("place %s: %w", target, err)
	}
	return name, nil
}
