package sink

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "output")
	d, err := NewDir(out)
	require.NoError(t, err)
	assert.Equal(t, FormatSVG, d.Format())
	assert.Equal(t, filepath.Join(out, "{}.svg"), d.String())
	assert.DirExists(t, out)

	require.NoError(t, d.Write(0, []byte("<svg/>")))
	data, err := os.ReadFile(filepath.Join(out, "0.svg"))
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(data))
}

func TestTemplatedOutput(t *testing.T) {
	root := t.TempDir()
	d, err := NewDir(filepath.Join(root, "out", "line_{}.svg"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "out", "line_7.svg"), d.Path(7))
	assert.Equal(t, filepath.Join(root, "out", "line_{}.svg"), d.String())

	require.NoError(t, d.Write(1, []byte("x")))
	assert.FileExists(t, filepath.Join(root, "out", "line_1.svg"))
}

func TestPDFOutput(t *testing.T) {
	d, err := NewDir(filepath.Join(t.TempDir(), "p{}.PDF"))
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, d.Format())
}

func TestRejectsUnknownExtension(t *testing.T) {
	_, err := NewDir(filepath.Join(t.TempDir(), "line_{}.png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "png")
}

func TestRejectsBadTemplate(t *testing.T) {
	_, err := NewDir(filepath.Join(t.TempDir(), "line.svg"))
	assert.Error(t, err)
}

func TestWriteFailure(t *testing.T) {
	out := t.TempDir()
	d, err := NewDir(out)
	require.NoError(t, err)
	// 目标路径被目录占用时写入失败
	require.NoError(t, os.Mkdir(filepath.Join(out, "0.svg"), 0o755))
	assert.Error(t, d.Write(0, []byte("x")))
}
