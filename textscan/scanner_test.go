/*
 * scanner_test.go, part of qclog.
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

package textscan

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/rmera/qclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `first line
 Section A
 value 1
 Section B
 value 2
 Section A
 value 3
last line
`

func TestFindForward(t *testing.T) {
	S := FromString(sample, "sample")
	assert.Equal(t, 8, S.Len())
	line, i, ok := S.Find("Section A")
	require.True(t, ok)
	assert.Equal(t, " Section A", line)
	assert.Equal(t, 1, i)
	assert.Equal(t, 2, S.Pos())
	next, ok := S.Next()
	require.True(t, ok)
	assert.Equal(t, " value 1", next)

	_, i, ok = S.Find("Section A")
	require.True(t, ok)
	assert.Equal(t, 5, i)

	_, _, ok = S.Find("Section A")
	assert.False(t, ok)
	assert.True(t, S.Done())
}

func TestFindLast(t *testing.T) {
	S := FromString(sample, "sample")
	_, i, ok := S.FindLast("Section A", "Section B")
	require.True(t, ok)
	assert.Equal(t, 5, i)
	assert.Equal(t, 6, S.Pos())

	S.Rewind()
	_, i, ok = S.FindLast("Section B")
	require.True(t, ok)
	assert.Equal(t, 3, i)

	S.Rewind()
	_, _, ok = S.FindLast("Section C")
	assert.False(t, ok)
	assert.Equal(t, S.Len(), S.Pos())
}

func TestFindBackward(t *testing.T) {
	S := FromString(sample, "sample")
	S.Seek(3)
	line, i, ok := S.FindBackward("value")
	require.True(t, ok)
	assert.Equal(t, " value 3", line)
	assert.Equal(t, 6, i)
	assert.Equal(t, 3, S.Pos(), "FindBackward must not move the cursor")
	assert.True(t, S.Contains("first"))
	assert.False(t, S.Contains("section a"), "anchors are case sensitive")
}

func TestSkipAndSeek(t *testing.T) {
	S := FromString(sample, "sample")
	S.Skip(3)
	line, _ := S.Next()
	assert.Equal(t, " Section B", line)
	S.Skip(100)
	assert.True(t, S.Done())
	_, ok := S.Next()
	assert.False(t, ok)
	S.Seek(-4)
	assert.Equal(t, 0, S.Pos())
	_, ok = S.Line(42)
	assert.False(t, ok)
	l, ok := S.Line(7)
	assert.True(t, ok)
	assert.Equal(t, "last line", l)
}

func TestOpenCompressed(t *testing.T) {
	dir := t.TempDir()

	var gz bytes.Buffer
	gw := gzip.NewWriter(&gz)
	_, err := gw.Write([]byte(sample))
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	zw, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	zs := zw.EncodeAll([]byte(sample), nil)
	require.NoError(t, zw.Close())

	files := map[string][]byte{
		"plain.txt": []byte(sample),
		"gzipped":   gz.Bytes(),
		"zstd.out":  zs,
		"crlf.out":  bytes.ReplaceAll([]byte(sample), []byte("\n"), []byte("\r\n")),
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, content, 0o644))
		S, err := Open(path)
		require.NoError(t, err, name)
		assert.Equal(t, 8, S.Len(), name)
		l, _ := S.Line(7)
		assert.Equal(t, "last line", l, name)
		assert.Equal(t, path, S.FileName())
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.out"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, qclog.ErrUnableToOpen))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
