package flatfile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/roastery/internal/flatfile"
)

func TestRead_MissingFile(t *testing.T) {
	rows, err := flatfile.Read(filepath.Join(t.TempDir(), "nope.txt"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRead_SkipsBlankLinesAndTracksLineNumbers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inv.txt")
	content := "B001,2023-05-15,F042,Arabica,250,received\n\n\nB002,2023-05-16,F036,Robusta,300,washing\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rows, err := flatfile.Read(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 1, rows[0].Line)
	assert.Equal(t, []string{"B001", "2023-05-15", "F042", "Arabica", "250", "received"}, rows[0].Fields)
	assert.Equal(t, 4, rows[1].Line)
	assert.Equal(t, "B002", rows[1].Fields[0])
}

func TestRead_Windows1252(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inv.txt")
	// "Arábica" in Windows-1252: á = 0xE1.
	content := append([]byte("B001,Ar"), 0xE1)
	content = append(content, []byte("bica\n")...)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	rows, err := flatfile.Read(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"B001", "Arábica"}, rows[0].Fields)
}

func TestAppend_CreatesAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inv.txt")

	require.NoError(t, flatfile.Append(path, []string{"B001", "2023-05-15", "F042", "Arabica", "250", "received"}))
	require.NoError(t, flatfile.Append(path, []string{"B002", "2023-05-16", "F036", "Robusta", "300", "washing"}))

	rows, err := flatfile.Read(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "B001", rows[0].Fields[0])
	assert.Equal(t, "B002", rows[1].Fields[0])
}

func TestRewrite_ReplacesContentAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inv.txt")
	require.NoError(t, os.WriteFile(path, []byte("old,content\n"), 0o644))

	records := [][]string{
		{"B001", "2023-05-15", "F042", "Arabica", "250", "roasting"},
		{"B002", "2023-05-16", "F036", "Robusta", "300", "washing"},
	}
	require.NoError(t, flatfile.Rewrite(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "B001,2023-05-15,F042,Arabica,250,roasting\nB002,2023-05-16,F036,Robusta,300,washing\n", string(data))

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "inv.txt", entries[0].Name())
}

func TestRead_UnterminatedFinalLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inv.txt")
	// A final line without a terminator still parses as a full record.
	require.NoError(t, os.WriteFile(path, []byte("B001,received\nB002,washing"), 0o644))

	rows, err := flatfile.Read(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"B002", "washing"}, rows[1].Fields)
}

func TestMalformedError_Message(t *testing.T) {
	err := &flatfile.MalformedError{Path: "bean_inventory.txt", Line: 3, Reason: "expected 6 fields, got 4"}
	assert.True(t, strings.Contains(err.Error(), "bean_inventory.txt:3"))
	assert.True(t, strings.Contains(err.Error(), "expected 6 fields, got 4"))
}
