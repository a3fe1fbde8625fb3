package service

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"veridian-datagen/models"
	"veridian-datagen/utils"
)

const (
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorBold  = "\033[1m"
	colorReset = "\033[0m"
)

// CategoryCount is the number of records of one category.
type CategoryCount struct {
	Category models.Category
	Count    int
}

// LocalityCount is the number of records placed in one locality.
type LocalityCount struct {
	Name  string
	Count int
}

// Summary holds the post-run statistics of a dataset.
type Summary struct {
	RunID      string
	Total      int
	ByCategory []CategoryCount // declaration order
	ByLocality []LocalityCount // locality table order
	Risky      int
	Traps      int
	MeanPrice  float64
}

// Summarize counts a dataset. Categories and localities with no records are
// listed with a zero count.
func Summarize(ds models.Dataset) Summary {
	s := Summary{RunID: ds.RunID, Total: len(ds.Records)}

	perCategory := make(map[models.Category]int)
	perLocality := make(map[string]int)
	var priceSum float64
	for _, p := range ds.Records {
		perCategory[p.Category]++
		perLocality[p.Locality]++
		priceSum += float64(p.Price)
		if p.IsRisky() {
			s.Risky++
		}
		if p.Trap {
			s.Traps++
		}
	}

	for _, c := range models.Categories {
		s.ByCategory = append(s.ByCategory, CategoryCount{Category: c, Count: perCategory[c]})
	}
	for _, l := range ds.Localities {
		s.ByLocality = append(s.ByLocality, LocalityCount{Name: l.Name, Count: perLocality[l.Name]})
	}
	if s.Total > 0 {
		s.MeanPrice = priceSum / float64(s.Total)
	}
	return s
}

// PrintSummary writes the statistics block. With color set, headings are
// bold and the risky count is red.
func PrintSummary(w io.Writer, s Summary, color bool) {
	paint := func(code, text string) string {
		if !color {
			return text
		}
		return code + text + colorReset
	}

	fmt.Fprintf(w, "\n%s\n", paint(colorGreen, fmt.Sprintf("Generated %d properties (run %s)", s.Total, s.RunID)))
	fmt.Fprintf(w, "\n%s\n", paint(colorBold, "Dataset Statistics:"))
	for _, c := range s.ByCategory {
		fmt.Fprintf(w, "  - %s: %d\n", c.Category.Label(), c.Count)
	}
	for _, l := range s.ByLocality {
		fmt.Fprintf(w, "  - Properties in %s: %d\n", l.Name, l.Count)
	}
	fmt.Fprintf(w, "  - Trap properties (injected): %d\n", s.Traps)
	fmt.Fprintf(w, "  - %s\n", paint(colorRed, fmt.Sprintf("Risky properties: %d", s.Risky)))
	fmt.Fprintf(w, "  - Average price: ₹%s (%s)\n", utils.FormatINR(s.MeanPrice), utils.FormatCrore(s.MeanPrice))
}

// ColorEnabled reports whether f is a terminal that can take ANSI colour.
func ColorEnabled(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
