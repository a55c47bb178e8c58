// Package extract reads the plain text of note files.
package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// ErrUnreadable is returned when a file yields no text.
var ErrUnreadable = errors.New("no text could be extracted")

// ExtractText returns the cleaned text of a .txt, .md, .docx or .pdf file.
// Other extensions are read as UTF-8 text. On failure the text is empty.
func ExtractText(path string) (string, error) {
	var raw string
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		raw, err = readPDF(path)
	case ".docx":
		raw, err = readDOCX(path)
	default:
		raw, err = readPlain(path)
	}
	if err != nil {
		return "", err
	}

	text := CleanText(raw)
	if text == "" {
		return "", fmt.Errorf("%s: %w", path, ErrUnreadable)
	}
	return text, nil
}

func readPlain(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	return strings.ToValidUTF8(string(b), ""), nil
}

func readPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("pdf.Open(%s) > %w", path, err)
	}
	defer f.Close()

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("pdf.GetPlainText(%s) > %w", path, err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("read pdf text of %s > %w", path, err)
	}
	return buf.String(), nil
}

func readDOCX(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("zip.OpenReader(%s) > %w", path, err)
	}
	defer archive.Close()

	for _, file := range archive.File {
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("open word/document.xml in %s > %w", path, err)
		}
		defer rc.Close()
		return documentText(rc)
	}
	return "", fmt.Errorf("%s has no word/document.xml", path)
}

// documentText collects the w:t runs of a WordprocessingML body, one line per paragraph.
func documentText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var paragraphs []string
	var current strings.Builder
	inText := false
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("xml.Decoder.Token() > %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				current.WriteByte('\t')
			case "br":
				current.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if current.Len() > 0 {
					paragraphs = append(paragraphs, current.String())
				}
				current.Reset()
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}
	if current.Len() > 0 {
		paragraphs = append(paragraphs, current.String())
	}
	return strings.Join(paragraphs, "\n"), nil
}

var replacer = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"–", "-",
	"—", "-",
	" ", " ",
	"Â", "",
)

// CleanText repairs UTF-8 that was decoded as Windows-1252, normalizes to
// NFKC, maps typographic quotes and dashes to ASCII and collapses whitespace.
func CleanText(text string) string {
	text = norm.NFKC.String(repairMojibake(text))
	text = replacer.Replace(text)
	return strings.Join(strings.Fields(text), " ")
}

func repairMojibake(text string) string {
	if !strings.Contains(text, "â€") && !strings.Contains(text, "Ã") {
		return text
	}
	encoded, err := charmap.Windows1252.NewEncoder().String(text)
	if err != nil || !utf8.ValidString(encoded) {
		return text
	}
	return encoded
}
