package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadUTF8(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.baa")
	require.NoError(t, os.WriteFile(path, []byte("دالة مربع() { إرجع ٠. }"), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Name)
	assert.Contains(t, string(f.Text), "دالة")
}

func TestLoadUTF16LEWithBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.baa")

	text := "عدد"
	var raw []byte
	raw = append(raw, 0xFF, 0xFE)
	for _, r := range text {
		raw = append(raw, byte(r), byte(r>>8))
	}
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, text, string(f.Text))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.baa"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.baa")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrEmpty)
}

func TestLoadInvalidEncoding(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.baa")

	// Two-byte BOM prefix 0xFF 0xFE is matched as UTF-16LE, so use a
	// payload with an odd trailing byte to force the decode error.
	raw := []byte{0xFF, 0xFE, 0x41, 0x00, 0x42}
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestFromString(t *testing.T) {
	f := FromString("<demo>", "إرجع ٠.")
	assert.Equal(t, "<demo>", f.Name)
	assert.Equal(t, []rune("إرجع ٠."), f.Text)
}
