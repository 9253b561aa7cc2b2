// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/jonathan/internship-recommender/internal/catalog"
	"github.com/jonathan/internship-recommender/internal/recommend"
	"github.com/jonathan/internship-recommender/internal/skills"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxCellWidth truncates long names in tables
	maxCellWidth = 48
)

// Printer handles formatted output for CLI commands
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

func renderTable(headers []string, rows [][]string, rightAligned map[int]bool) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(headers))
		for i := range headers {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, len(headers))
	for i := range headers {
		align := text.AlignLeft
		if rightAligned[i] {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
			WidthMax:    maxCellWidth,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// PrintRecommendations outputs ranked recommendations as a table.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRecommendations(title string, recs []recommend.Recommendation) {
	if title != "" {
		fmt.Fprintln(p.out, title)
	}
	if len(recs) == 0 {
		fmt.Fprintln(p.out, "No matching listings.")
		return
	}

	rows := make([][]string, 0, len(recs))
	for i, r := range recs {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			r.ID,
			r.Name,
			r.Partner,
			fmt.Sprintf("%.4f", r.Score),
		})
	}
	fmt.Fprintln(p.out, renderTable(
		[]string{"#", "ID", "Name", "Partner", "Score"},
		rows,
		map[int]bool{0: true, 4: true},
	))
}

// PrintListings outputs catalog listings as a table.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintListings(listings []catalog.Listing) {
	if len(listings) == 0 {
		fmt.Fprintln(p.out, "No listings.")
		return
	}

	rows := make([][]string, 0, len(listings))
	for _, l := range listings {
		rows = append(rows, []string{l.ID, l.Name, l.PartnerName, l.Logo})
	}
	fmt.Fprintln(p.out, renderTable([]string{"ID", "Name", "Partner", "Logo"}, rows, nil))
}

// PrintSkills outputs a parsed skills field.
func (p *Printer) PrintSkills(result skills.Result) {
	if !result.Parsed {
		p.printBox("SKILLS (unparsed)", result.Raw)
		return
	}
	if len(result.Names) == 0 {
		p.printBox("SKILLS", "(none)")
		return
	}

	var sb strings.Builder
	for _, name := range result.Names {
		sb.WriteString(fmt.Sprintf("• %s\n", name))
	}
	p.printBox("SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDetail outputs a listing with its skills and similar listings.
func (p *Printer) PrintDetail(d *recommend.Detail) {
	if d == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ID:       %s\n", d.Listing.ID))
	sb.WriteString(fmt.Sprintf("Name:     %s\n", d.Listing.Name))
	sb.WriteString(fmt.Sprintf("Partner:  %s", d.Listing.PartnerName))
	if d.Description != "" {
		sb.WriteString("\n\n")
		sb.WriteString(d.Description)
	}
	p.printBox("LISTING", sb.String())

	p.PrintSkills(d.Skills)
	p.PrintRecommendations("Similar listings:", d.Recommendations)
}

// PrintIndexSummary outputs the size of the loaded catalog and vocabulary.
func (p *Printer) PrintIndexSummary(listings, terms int) {
	p.printBox("INDEX", fmt.Sprintf("Listings:    %d\nVocabulary:  %d terms", listings, terms))
}
