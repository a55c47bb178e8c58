package extract

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "collapses whitespace", in: "  Cells \n\n divide\t quickly  ", want: "Cells divide quickly"},
		{name: "smart quotes and dashes", in: "“Mitosis” – it’s a process — really", want: `"Mitosis" - it's a process - really`},
		{name: "full width characters", in: "ＡＴＰ　synthase", want: "ATP synthase"},
		{name: "mojibake apostrophe", in: "itâ€™s done", want: "it's done"},
		{name: "mojibake accent", in: "cafÃ© culture", want: "café culture"},
		{name: "stray non breaking marker", in: "10Â°C", want: "10°C"},
		{name: "empty", in: " \n\t", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestExtractText(t *testing.T) {
	dir := t.TempDir()

	txtPath := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("Photosynthesis  happens\nin “chloroplasts”."), 0o644))

	mdPath := filepath.Join(dir, "notes.MD")
	require.NoError(t, os.WriteFile(mdPath, []byte("# Cells\n\nThe nucleus holds DNA."), 0o644))

	docxPath := filepath.Join(dir, "notes.docx")
	writeDOCX(t, docxPath, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Enzymes are</w:t></w:r><w:r><w:t xml:space="preserve"> catalysts.</w:t></w:r></w:p>
    <w:p><w:r><w:t>They lower</w:t><w:tab/><w:t>activation energy.</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	emptyPath := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(emptyPath, []byte(" \n "), 0o644))

	brokenPDF := filepath.Join(dir, "broken.pdf")
	require.NoError(t, os.WriteFile(brokenPDF, []byte("not a pdf"), 0o644))

	brokenDOCX := filepath.Join(dir, "broken.docx")
	require.NoError(t, os.WriteFile(brokenDOCX, []byte("not a zip"), 0o644))

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr error
	}{
		{name: "plain text", path: txtPath, want: `Photosynthesis happens in "chloroplasts".`},
		{name: "markdown read as text", path: mdPath, want: "# Cells The nucleus holds DNA."},
		{name: "word document", path: docxPath, want: "Enzymes are catalysts. They lower activation energy."},
		{name: "empty file", path: emptyPath, wantErr: ErrUnreadable},
		{name: "missing file", path: filepath.Join(dir, "missing.txt"), wantErr: os.ErrNotExist},
		{name: "invalid pdf", path: brokenPDF},
		{name: "invalid docx", path: brokenDOCX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractText(tt.path)
			if tt.want == "" {
				require.Error(t, err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func writeDOCX(t *testing.T, path, document string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	part, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = part.Write([]byte(document))
	require.NoError(t, err)
	require.NoError(t, w.Close())
}
