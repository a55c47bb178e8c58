// Package report renders the quiz history and review schedule as a markdown,
// HTML or PDF document.
package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mandolyte/mdtopdf"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/at-ishikawa/learncoach/internal/assets"
	"github.com/at-ishikawa/learncoach/internal/statistics"
	"github.com/at-ishikawa/learncoach/internal/store"
)

type Format string

const (
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
	FormatPDF      Format = "pdf"
)

// ParseFormat accepts md, markdown, html and pdf.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "md", "markdown":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unsupported report format %q", value)
	}
}

var htmlRenderer = goldmark.New(goldmark.WithExtensions(extension.Table))

// Options controls what Build puts into a report.
type Options struct {
	Title        string
	GeneratedAt  time.Time
	MaxScore     float64
	UpcomingDays int
	// Year and Month filter the quiz history; 0 means no filter.
	Year  int
	Month int
}

// Build assembles the template data from the quiz history and the reviews due.
func Build(results []store.QuizResult, due []store.ReviewSchedule, opts Options) assets.ReportTemplate {
	stats := statistics.CalculateStatistics(results, opts.Year, opts.Month)

	data := assets.ReportTemplate{
		Title:        opts.Title,
		GeneratedAt:  opts.GeneratedAt.UTC(),
		MaxScore:     opts.MaxScore,
		UpcomingDays: opts.UpcomingDays,
		Aggregate: assets.ReportAggregate{
			Attempts:     stats.Aggregate.Attempts,
			UniqueTopics: stats.Aggregate.UniqueTopics,
			AverageScore: stats.Aggregate.AverageScore,
		},
	}
	if data.Title == "" {
		data.Title = "Learning report"
	}
	for _, s := range due {
		data.Due = append(data.Due, assets.ReportReview{
			Topic:          s.Topic,
			NextReviewDate: s.NextReviewDate,
			IntervalDays:   s.IntervalDays,
			Easiness:       s.Easiness,
		})
	}
	for _, t := range stats.Topics {
		data.Topics = append(data.Topics, assets.ReportTopic{Topic: t.Topic, Average: t.Average, Attempts: t.Attempts})
	}
	for _, d := range stats.Daily {
		data.Daily = append(data.Daily, assets.ReportDay{Date: d.Date, Average: d.Average, Attempts: d.Attempts})
	}
	for _, p := range stats.Performance {
		data.Performance = append(data.Performance, assets.ReportAttempt{Topic: p.Topic, Score: p.Score, TakenAt: p.TakenAt})
	}
	return data
}

// Render writes data to w as markdown or HTML. PDF needs a file; use WriteFile.
func Render(w io.Writer, templatePath string, data assets.ReportTemplate, format Format) error {
	switch format {
	case FormatMarkdown:
		return assets.WriteReport(w, templatePath, data)
	case FormatHTML:
		var markdown bytes.Buffer
		if err := assets.WriteReport(&markdown, templatePath, data); err != nil {
			return err
		}
		if err := htmlRenderer.Convert(markdown.Bytes(), w); err != nil {
			return fmt.Errorf("htmlRenderer.Convert() > %w", err)
		}
		return nil
	default:
		return fmt.Errorf("format %q cannot be written to a stream", format)
	}
}

// WriteFile renders data into outputDirectory and returns the absolute path
// of the written file. The file name is derived from the generation date.
func WriteFile(outputDirectory, templatePath string, data assets.ReportTemplate, format Format) (string, error) {
	if err := os.MkdirAll(outputDirectory, 0o755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", outputDirectory, err)
	}
	path := filepath.Join(outputDirectory, fmt.Sprintf("report-%s.%s", data.GeneratedAt.Format(store.DateLayout), format))

	if format == FormatPDF {
		var markdown bytes.Buffer
		if err := assets.WriteReport(&markdown, templatePath, data); err != nil {
			return "", err
		}
		if err := convertMarkdownToPDF(markdown.Bytes(), path); err != nil {
			return "", err
		}
		return absolute(path), nil
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()
	if err := Render(file, templatePath, data, format); err != nil {
		return "", err
	}
	return absolute(path), nil
}

func convertMarkdownToPDF(content []byte, pdfPath string) error {
	content = fillEmptyHeaderCells(content)

	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	return recoverPanic("renderer.Process()", func() error {
		if err := renderer.Process(content); err != nil {
			return fmt.Errorf("renderer.Process() > %w", err)
		}
		return nil
	})
}

// recoverPanic returns a panic raised by fn as an error. mdtopdf panics on
// table shapes it cannot lay out, and templates can be overridden by users.
func recoverPanic(op string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s panicked: %v", op, r)
		}
	}()
	return fn()
}

// fillEmptyHeaderCells puts a "-" into blank table header cells.
// mdtopdf sizes the columns from the header text only.
func fillEmptyHeaderCells(content []byte) []byte {
	lines := strings.Split(string(content), "\n")
	for i := 0; i+1 < len(lines); i++ {
		if !isTableRow(lines[i]) || !isTableDelimiter(lines[i+1]) {
			continue
		}
		cells := strings.Split(strings.Trim(strings.TrimSpace(lines[i]), "|"), "|")
		for j, cell := range cells {
			if cell = strings.TrimSpace(cell); cell == "" {
				cell = "-"
			}
			cells[j] = cell
		}
		lines[i] = "| " + strings.Join(cells, " | ") + " |"
	}
	return []byte(strings.Join(lines, "\n"))
}

func isTableRow(line string) bool {
	line = strings.TrimSpace(line)
	return strings.HasPrefix(line, "|") && strings.HasSuffix(line, "|") && len(line) > 1
}

func isTableDelimiter(line string) bool {
	if !isTableRow(line) || !strings.Contains(line, "-") {
		return false
	}
	return strings.Trim(strings.TrimSpace(line), "|-: ") == ""
}

func absolute(path string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}
