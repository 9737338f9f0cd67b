// Package report renders scoring results as console tables.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/fdiazgon/minimal-ir/internal/domain"
	"github.com/fdiazgon/minimal-ir/internal/recommender"
	"github.com/fdiazgon/minimal-ir/internal/vocabulary"
)

// Writer renders ranking results to a console stream.
type Writer struct {
	out io.Writer
}

// New creates a Writer targeting out.
func New(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Recommendations prints each profile's interests followed by its ranked
// recommendations, best first. The footer reminds the reader that
// below-threshold documents are hidden.
func (w *Writer) Recommendations(profiles []*domain.Profile, threshold float64) {
	for _, profile := range profiles {
		fmt.Fprintf(w.out, "%s\n", profile.Name)
		fmt.Fprintf(w.out, "Interests: %s\n", strings.Join(profile.Interests, " & "))
		table := w.newTable()
		table.SetHeader([]string{"Recommendation", "Score"})
		for _, rec := range profile.Recommendations() {
			table.Append([]string{rec.DocumentID, formatScore(rec.Score)})
		}
		table.Render()
		fmt.Fprintln(w.out)
	}
	fmt.Fprintf(w.out, "Documents with score less than %v are hidden\n", threshold)
}

// Frequencies prints the per-document term counts, one row per document,
// terms in vocabulary axis order.
func (w *Writer) Frequencies(freqs recommender.FrequencyTable, vocab *vocabulary.Vocabulary) {
	fmt.Fprintln(w.out, "Term frequencies (synonyms grouped)")
	table := w.newTable()
	table.SetHeader(append([]string{"Document"}, vocab.Terms()...))

	ids := make([]string, 0, len(freqs))
	for id := range freqs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		row := make([]string, 0, vocab.Len()+1)
		row = append(row, id)
		for _, term := range vocab.Terms() {
			row = append(row, strconv.Itoa(freqs[id][term]))
		}
		table.Append(row)
	}
	table.Render()
	fmt.Fprintln(w.out)
}

func (w *Writer) newTable() *tablewriter.Table {
	table := tablewriter.NewWriter(w.out)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 4, 64)
}
