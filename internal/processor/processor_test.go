package processor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trackingCloser struct {
	io.Reader
	closed int
}

func (t *trackingCloser) Close() error {
	t.closed++
	return nil
}

func TestNewProcessor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path      string
		name      string
		innerPath string
	}{
		{path: "data.tab", name: "text", innerPath: "data.tab"},
		{path: "data.tab.gz", name: "gzip", innerPath: "data.tab"},
		{path: "data.tab.GZ", name: "gzip", innerPath: "data.tab"},
		{path: "dir/data.tab.zst", name: "zstd", innerPath: "dir/data.tab"},
		{path: "archive.gz", name: "gzip", innerPath: "archive"},
		{path: "noext", name: "text", innerPath: "noext"},
		{path: "data.txt", name: "text", innerPath: "data.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			p, inner := NewProcessor(tt.path)
			assert.Equal(t, tt.name, p.Name())
			assert.Equal(t, tt.innerPath, inner)
		})
	}
}

func TestTextProcessor_Process(t *testing.T) {
	t.Parallel()

	src := &trackingCloser{Reader: bytes.NewReader([]byte("a\tb\n"))}

	rc, err := NewTextProcessor().Process(src)
	require.NoError(t, err)

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "a\tb\n", string(data))

	require.NoError(t, rc.Close())
	assert.Equal(t, 1, src.closed)
}

func TestGzipProcessor_Process(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write([]byte("this\tis\na\ttest\n"))
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	src := &trackingCloser{Reader: &buf}

	rc, err := NewGzipProcessor(NewTextProcessor()).Process(src)
	require.NoError(t, err)

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "this\tis\na\ttest\n", string(data))

	require.NoError(t, rc.Close())
	assert.Equal(t, 1, src.closed)
}

func TestGzipProcessor_Process_NotGzip(t *testing.T) {
	t.Parallel()

	src := &trackingCloser{Reader: bytes.NewReader([]byte("plain text, not gzip"))}

	_, err := NewGzipProcessor(NewTextProcessor()).Process(src)
	require.Error(t, err)
	assert.True(t, IsCorruptedError(err))
	assert.Equal(t, 0, src.closed, "caller owns the source on failure")
}

func TestZstdProcessor_Process(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = zw.Write([]byte("red\tgreen\tblue\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	src := &trackingCloser{Reader: &buf}

	rc, err := NewZstdProcessor(NewTextProcessor()).Process(src)
	require.NoError(t, err)

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "red\tgreen\tblue\n", string(data))

	require.NoError(t, rc.Close())
	assert.Equal(t, 1, src.closed)
}

func TestZstdProcessor_Process_BadMagic(t *testing.T) {
	t.Parallel()

	src := &trackingCloser{Reader: bytes.NewReader([]byte("definitely not zstd"))}

	rc, err := NewZstdProcessor(NewTextProcessor()).Process(src)
	if err == nil {
		_, err = io.ReadAll(rc)
		_ = rc.Close()
	}

	require.Error(t, err)
	assert.True(t, IsCorruptedError(err))
}

func TestStackedCloser_JoinsErrors(t *testing.T) {
	t.Parallel()

	errFirst := errors.New("first")
	errSecond := errors.New("second")

	sc := newStackedCloser(bytes.NewReader(nil), closerFunc(func() error { return errFirst }),
		closerFunc(func() error { return errSecond }))

	err := sc.Close()
	assert.ErrorIs(t, err, errFirst)
	assert.ErrorIs(t, err, errSecond)
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestIsCorruptedError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "gzip header", err: gzip.ErrHeader, expected: true},
		{name: "gzip checksum", err: gzip.ErrChecksum, expected: true},
		{name: "zstd magic", err: zstd.ErrMagicMismatch, expected: true},
		{name: "zstd reserved block", err: zstd.ErrReservedBlockType, expected: true},
		{name: "wrapped zstd window", err: fmt.Errorf("read: %w", zstd.ErrWindowSizeExceeded), expected: true},
		{name: "nil", err: nil, expected: false},
		{name: "eof", err: io.EOF, expected: false},
		{name: "other", err: errors.New("other"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, IsCorruptedError(tt.err))
		})
	}
}
