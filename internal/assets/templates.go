package assets

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"
	"time"
)

//go:embed templates/report.md.go.tmpl
var fallbackReportTemplate string

const reportTemplateName = "report.md.go.tmpl"

// barWidth is the number of cells of a full score bar.
const barWidth = 20

// ReportTemplate is the top-level data structure for the report template.
type ReportTemplate struct {
	Title        string
	GeneratedAt  time.Time
	MaxScore     float64
	UpcomingDays int
	Aggregate    ReportAggregate
	Due          []ReportReview
	Topics       []ReportTopic
	Daily        []ReportDay
	Performance  []ReportAttempt
}

type ReportAggregate struct {
	Attempts     int
	UniqueTopics int
	AverageScore float64
}

// ReportReview is a scheduled review.
type ReportReview struct {
	Topic          string
	NextReviewDate string
	IntervalDays   int
	Easiness       float64
}

type ReportTopic struct {
	Topic    string
	Average  float64
	Attempts int
}

type ReportDay struct {
	Date     string
	Average  float64
	Attempts int
}

type ReportAttempt struct {
	Topic   string
	Score   float64
	TakenAt time.Time
}

// WriteReport renders data as markdown. A readable template at templatePath
// takes precedence over the embedded one.
func WriteReport(output io.Writer, templatePath string, data ReportTemplate) error {
	tmpl, err := ParseReportTemplate(templatePath)
	if err != nil {
		return fmt.Errorf("ParseReportTemplate() > %w", err)
	}
	if err := tmpl.Execute(output, data); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}

func ParseReportTemplate(templatePath string) (*template.Template, error) {
	return parseTemplateWithFallback(templatePath, fallbackReportTemplate)
}

func parseTemplateWithFallback(templatePath string, fallbackTemplate string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join":  strings.Join,
		"score": formatScore,
		"bar":   bar,
	}

	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			fileName := filepath.Base(templatePath)
			tmpl, err := template.New(fileName).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(reportTemplateName).
		Funcs(funcMap).
		Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}

func formatScore(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}

// bar draws value as a fixed-width text bar relative to maxValue.
func bar(value, maxValue float64) string {
	if maxValue <= 0 || math.IsNaN(value) {
		return strings.Repeat(".", barWidth)
	}
	filled := int(math.Round(math.Max(0, math.Min(value, maxValue)) / maxValue * barWidth))
	return strings.Repeat("=", filled) + strings.Repeat(".", barWidth-filled)
}
