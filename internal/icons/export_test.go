package icons

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportWritesPNGs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	f := NewFactory()

	written, err := f.Export(dir, f.ToolbarIcons(16))
	require.NoError(t, err)
	require.Len(t, written, len(allNames))

	for _, name := range allNames {
		data, err := os.ReadFile(filepath.Join(dir, name+"-16.png"))
		require.NoError(t, err, name)
		assert.Equal(t, "\x89PNG", string(data[:4]), name)
	}
}

func TestExportSkipsBlank(t *testing.T) {
	dir := t.TempDir()
	f := NewFactory()

	set := f.ToolbarIcons(16)
	set[Undo] = BlankIcon

	written, err := f.Export(dir, set)
	require.NoError(t, err)
	assert.Len(t, written, len(allNames)-1)
	assert.NoFileExists(t, filepath.Join(dir, "blank.svg"))
}

func TestExportReportsEveryFailure(t *testing.T) {
	dir := t.TempDir()
	// A directory squatting on the target path makes WriteFile fail.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "pan-16.png"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "edit-16.png"), 0755))

	f := NewFactory()
	written, err := f.Export(dir, f.ToolbarIcons(16))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write pan")
	assert.Contains(t, err.Error(), "write edit")
	assert.Len(t, written, len(allNames)-2)
}

func TestExportDocuments(t *testing.T) {
	dir := t.TempDir()

	written, err := NewFactory().ExportDocuments(dir, 32)
	require.NoError(t, err)
	assert.Len(t, written, len(allNames))

	data, err := os.ReadFile(filepath.Join(dir, "reset_view.svg"))
	require.NoError(t, err)
	want, _ := Document(ResetView, 32)
	assert.Equal(t, want, string(data))
}

func TestBuildWithBackground(t *testing.T) {
	set := NewFactory().Build(24, color.White)
	img := decode(t, set[Pan])

	r, g, b, a := img.At(0, 0).RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0xffff, 0xffff, 0xffff}, [4]uint32{r, g, b, a})
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.Color
	}{
		{"", nil},
		{"transparent", nil},
		{" None ", nil},
		{"white", color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{"#fff", color.NRGBA{0xff, 0xff, 0xff, 0xff}},
		{"#102030", color.NRGBA{0x10, 0x20, 0x30, 0xff}},
		{"#10203080", color.NRGBA{0x10, 0x20, 0x30, 0x80}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"notacolor", "#12", "#ggg", "#1234567"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestExportSet(t *testing.T) {
	f := NewFactory()

	pngDir := t.TempDir()
	written, err := f.ExportSet(ExportOptions{Dir: pngDir, Size: 20, Background: color.Black})
	require.NoError(t, err)
	assert.Len(t, written, len(allNames))
	assert.FileExists(t, filepath.Join(pngDir, "erase-20.png"))

	svgDir := t.TempDir()
	written, err = f.ExportSet(ExportOptions{Dir: svgDir, Size: 20, SVG: true})
	require.NoError(t, err)
	assert.Len(t, written, len(allNames))
	assert.FileExists(t, filepath.Join(svgDir, "erase.svg"))
}
