package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalPutKeepsReportName(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir, "/reports/")

	res, err := l.Put(context.Background(), strings.NewReader("a,b\n1,2\n"), PutInput{
		Filename:    "heavenly-pies-report-2026-8.csv",
		ContentType: "text/csv",
		Size:        8,
	})
	require.NoError(t, err)

	assert.Equal(t, "heavenly-pies-report-2026-8.csv", res.Key)
	assert.Equal(t, "/reports/heavenly-pies-report-2026-8.csv", res.URL)

	data, err := os.ReadFile(filepath.Join(dir, res.Key))
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(data))
}

func TestLocalPutOverwritesSameMonth(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir, "/reports")

	in := PutInput{Filename: "heavenly-pies-report-2026-8.csv", ContentType: "text/csv"}
	_, err := l.Put(context.Background(), strings.NewReader("first"), in)
	require.NoError(t, err)
	res, err := l.Put(context.Background(), strings.NewReader("second"), in)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, res.Key))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestLocalPutRandomizesUnknownExtensions(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir, "/reports")

	res, err := l.Put(context.Background(), strings.NewReader("x"), PutInput{Filename: "report.exe"})
	require.NoError(t, err)
	assert.NotEqual(t, "report.exe", res.Key)
	assert.True(t, strings.HasSuffix(res.Key, ".exe"))
}

func TestLocalDelete(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir, "/reports")

	res, err := l.Put(context.Background(), strings.NewReader("x"), PutInput{Filename: "r.csv"})
	require.NoError(t, err)

	require.NoError(t, l.Delete(context.Background(), res.Key))
	_, err = os.Stat(filepath.Join(dir, res.Key))
	assert.True(t, os.IsNotExist(err))
}
