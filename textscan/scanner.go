/*
 * scanner.go, part of qclog.
 *
 *
 * Copyright 2024 The qclog authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

//Package textscan provides a line cursor over a text file, with
//substring anchored searches. It is the basis for the log readers of
//qclog. Files compressed with gzip or zstd are decompressed
//transparently. The compression is detected from the content of the
//file, never from its name.
package textscan

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/rmera/qclog"
)

//maxLine is the longest line the scanner accepts, in bytes.
const maxLine = 1024 * 1024

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

//Scanner is a cursor over the lines of a file. The whole file is read
//by Open, and the file is closed before Open returns, so a Scanner
//holds no system resources.
//A Scanner is not safe for concurrent use, but any number of Scanners
//can be opened on the same file.
type Scanner struct {
	filename string
	lines    []string
	pos      int //index of the next line to be returned by Next
}

//Open reads the file at path and returns a Scanner positioned at its
//first line.
func Open(path string) (*Scanner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, qclog.WrapError(qclog.UnableToOpen, err, path, "textscan.Open")
	}
	defer f.Close()
	lines, err := readLines(f)
	if err != nil {
		return nil, qclog.WrapError(qclog.UnableToOpen, err, path, "textscan.Open")
	}
	return &Scanner{filename: path, lines: lines}, nil
}

//FromReader builds a Scanner reading all the lines from r. name is only
//used to identify the source in errors.
func FromReader(r io.Reader, name string) (*Scanner, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, qclog.WrapError(qclog.UnableToOpen, err, name, "textscan.FromReader")
	}
	return &Scanner{filename: name, lines: lines}, nil
}

//FromString builds a Scanner over the lines of s.
func FromString(s, name string) *Scanner {
	S, _ := FromReader(strings.NewReader(s), name) //can't fail on plain text.
	return S
}

//decompressed returns a reader for the decompressed content of r, if it
//is compressed, and a function to release the decompressor.
func decompressed(r io.Reader) (io.Reader, func(), error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(zstdMagic)) //short files just give a short head.
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, nil, err
		}
		return gz, func() { gz.Close() }, nil
	case bytes.HasPrefix(head, zstdMagic):
		zs, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, nil, err
		}
		return zs, zs.Close, nil
	}
	return br, func() {}, nil
}

func readLines(r io.Reader) ([]string, error) {
	rd, release, err := decompressed(r)
	if err != nil {
		return nil, err
	}
	defer release()
	var lines []string
	s := bufio.NewScanner(rd)
	s.Buffer(make([]byte, 0, 64*1024), maxLine)
	for s.Scan() {
		lines = append(lines, strings.TrimSuffix(s.Text(), "\r"))
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

//FileName returns the name of the file the scanner reads.
func (S *Scanner) FileName() string { return S.filename }

//Len returns the number of lines.
func (S *Scanner) Len() int { return len(S.lines) }

//Pos returns the index of the line that the next call to Next will return.
func (S *Scanner) Pos() int { return S.pos }

//Seek places the cursor at line i. Values out of range are clamped to
//[0, Len()].
func (S *Scanner) Seek(i int) {
	switch {
	case i < 0:
		i = 0
	case i > len(S.lines):
		i = len(S.lines)
	}
	S.pos = i
}

//Rewind places the cursor at the first line.
func (S *Scanner) Rewind() { S.pos = 0 }

//Line returns the ith line, or an empty string and false if i is out of range.
func (S *Scanner) Line(i int) (string, bool) {
	if i < 0 || i >= len(S.lines) {
		return "", false
	}
	return S.lines[i], true
}

//Next returns the line at the cursor and advances it. It returns
//false once the end of the file has been reached.
func (S *Scanner) Next() (string, bool) {
	if S.pos >= len(S.lines) {
		return "", false
	}
	S.pos++
	return S.lines[S.pos-1], true
}

//Skip advances the cursor k lines, without going past the end of the file.
func (S *Scanner) Skip(k int) {
	S.Seek(S.pos + k)
}

//Done returns true if there are no more lines to read.
func (S *Scanner) Done() bool { return S.pos >= len(S.lines) }

//Find looks for the first line, starting at the cursor, that contains
//sub. If found, it returns the line and its index, and leaves the cursor
//just after it. Otherwise the cursor is left at the end of the file.
func (S *Scanner) Find(sub string) (string, int, bool) {
	for i := S.pos; i < len(S.lines); i++ {
		if strings.Contains(S.lines[i], sub) {
			S.pos = i + 1
			return S.lines[i], i, true
		}
	}
	S.pos = len(S.lines)
	return "", -1, false
}

//FindAny is like Find, but stops at the first line that contains any
//of the subs.
func (S *Scanner) FindAny(subs ...string) (string, int, bool) {
	for i := S.pos; i < len(S.lines); i++ {
		for _, sub := range subs {
			if strings.Contains(S.lines[i], sub) {
				S.pos = i + 1
				return S.lines[i], i, true
			}
		}
	}
	S.pos = len(S.lines)
	return "", -1, false
}

//FindLast looks for the last line containing any of subs, starting
//at the cursor. It scans until the end of the file, keeping the most
//recent match. If found, the cursor is left just after the match,
//otherwise at the end of the file.
func (S *Scanner) FindLast(subs ...string) (string, int, bool) {
	line, index, found := "", -1, false
	for {
		l, i, ok := S.FindAny(subs...)
		if !ok {
			break
		}
		line, index, found = l, i, true
	}
	if found {
		S.pos = index + 1
	}
	return line, index, found
}

//FindBackward looks for sub from the last line of the file backwards,
//and returns the first matching line and its index. The cursor is
//not moved.
func (S *Scanner) FindBackward(sub string) (string, int, bool) {
	for i := len(S.lines) - 1; i >= 0; i-- {
		if strings.Contains(S.lines[i], sub) {
			return S.lines[i], i, true
		}
	}
	return "", -1, false
}

//Contains returns true if any line of the file contains sub. The cursor
//is not moved.
func (S *Scanner) Contains(sub string) bool {
	_, _, ok := S.FindBackward(sub)
	return ok
}
