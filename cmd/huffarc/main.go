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

// Command huffarc bundles files into a Huffman-coded archive and
// restores them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	huffarc "github.com/huffarc/go-huffarc"
	"github.com/huffarc/go-huffarc/archive"
	"github.com/huffarc/go-huffarc/pkg/fileio"
)

// Exit codes, part of the command's contract.
const (
	exitOK     = 0
	exitUnzip  = 111
	exitCreate = 222
	exitUsage  = 333
)

func main() {
	os.Exit(run(os.Args[1:], afero.NewOsFs(), os.Stdout, os.Stderr))
}

func run(args []string, fsys afero.Fs, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("huffarc", flag.ContinueOnError)
	flags.SetOutput(stderr)

	var createName, unzipName string
	var help bool
	flags.StringVar(&createName, "create", "", "create the named archive from the listed files")
	flags.StringVar(&createName, "c", "", "shorthand for -create")
	flags.StringVar(&unzipName, "unzip", "", "unzip the named archive into the current directory")
	flags.StringVar(&unzipName, "d", "", "shorthand for -unzip")
	flags.BoolVar(&help, "help", false, "output help information")
	flags.BoolVar(&help, "h", false, "shorthand for -help")

	usage := func(w io.Writer) {
		fmt.Fprintf(w, "Usage:\n")
		fmt.Fprintf(w, "  huffarc -h\n")
		fmt.Fprintf(w, "  huffarc -c <archive> <file...>\n")
		fmt.Fprintf(w, "  huffarc -d <archive>\n\n")
		fmt.Fprintf(w, "Options:\n")
		flags.SetOutput(w)
		flags.PrintDefaults()
	}
	flags.Usage = func() { usage(stderr) }

	if err := flags.Parse(args); err != nil {
		return exitUsage
	}

	switch {
	case help:
		usage(stdout)
		return exitOK
	case createName != "" && unzipName != "":
		fmt.Fprintln(stderr, "Options -create and -unzip cannot be mentioned in a single program call.")
		flags.Usage()
		return exitUsage
	case createName != "":
		return create(fsys, stderr, createName, flags.Args())
	case unzipName != "":
		return unzip(fsys, stderr, unzipName)
	default:
		fmt.Fprintln(stderr, "No operation specified.")
		flags.Usage()
		return exitUsage
	}
}

func create(fsys afero.Fs, stderr io.Writer, archiveName string, files []string) int {
	if len(files) == 0 {
		fmt.Fprintln(stderr, "Files for archiving are not specified.")
		return exitUsage
	}

	fmt.Fprintf(stderr, "Creating archive %s...\n", archiveName)

	out, err := fileio.Create(fsys, archiveName)
	if err != nil {
		fmt.Fprintf(stderr, "A file system error has occurred: %v\n", err)
		return exitCreate
	}

	enc := archive.NewEncoder(out)
	for _, file := range files {
		fmt.Fprintf(stderr, "Archiving %s...\n", file)
		if err := archiveFile(enc, fsys, file); err != nil {
			fmt.Fprintf(stderr, "A file system error has occurred: %v\n", err)
			out.Close()
			return exitCreate
		}
	}
	if err := enc.Close(); err != nil {
		fmt.Fprintf(stderr, "A file system error has occurred: %v\n", err)
		out.Close()
		return exitCreate
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(stderr, "A file system error has occurred: %v\n", err)
		return exitCreate
	}

	fmt.Fprintln(stderr, "Done!")
	return exitOK
}

func archiveFile(enc *archive.Encoder, fsys afero.Fs, path string) error {
	in, err := fileio.Open(fsys, path)
	if err != nil {
		return err
	}
	defer in.Close()
	return enc.Encode(path, in)
}

func unzip(fsys afero.Fs, stderr io.Writer, archiveName string) int {
	fmt.Fprintf(stderr, "Unzipping archive %s...\n", archiveName)

	names, err := huffarc.Extract(fsys, archiveName, "")
	for _, name := range names {
		fmt.Fprintf(stderr, "Decoded %s.\n", name)
	}
	if err != nil {
		if errors.Is(err, archive.ErrMalformedArchive) {
			fmt.Fprintf(stderr, "A problem with %s has occurred: %v\n", archiveName, err)
		} else {
			fmt.Fprintf(stderr, "A file system error has occurred: %v\n", err)
		}
		return exitUnzip
	}

	fmt.Fprintln(stderr, "Done!")
	return exitOK
}
