package terminal

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/give-tools/donation-atlas/pkg/models/domain"
)

// Reporter renders StatBundles as tables on the console, one table per
// nested section.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

// Handle prints the bundle under the given title. Scalar entries land
// in one table; nested bundles and lists each get their own, titled
// with the parent key.
func (r *Reporter) Handle(title string, bundle domain.StatBundle) error {
	scalars := table.NewWriter()
	scalars.SetOutputMirror(r.writer)
	scalars.SetTitle(title)
	scalars.AppendHeader(table.Row{"Indicateur", "Valeur"})

	nestedKeys := make([]string, 0)
	for _, key := range sortedKeys(bundle) {
		switch bundle[key].(type) {
		case domain.StatBundle, []domain.StatBundle:
			nestedKeys = append(nestedKeys, key)
		default:
			scalars.AppendRow(table.Row{key, formatValue(bundle[key])})
		}
	}
	scalars.Render()

	for _, key := range nestedKeys {
		switch value := bundle[key].(type) {
		case domain.StatBundle:
			if err := r.Handle(key, value); err != nil {
				return err
			}
		case []domain.StatBundle:
			if err := r.handleList(key, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Reporter) handleList(title string, entries []domain.StatBundle) error {
	if len(entries) == 0 {
		return nil
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(r.writer)
	tw.SetTitle(title)

	keys := sortedKeys(entries[0])
	header := make(table.Row, 0, len(keys))
	for _, key := range keys {
		header = append(header, key)
	}
	tw.AppendHeader(header)

	for _, entry := range entries {
		row := make(table.Row, 0, len(keys))
		for _, key := range keys {
			row = append(row, formatValue(entry[key]))
		}
		tw.AppendRow(row)
	}
	tw.Render()
	return nil
}

func sortedKeys(bundle domain.StatBundle) []string {
	keys := make([]string, 0, len(bundle))
	for key := range bundle {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func formatValue(value any) string {
	switch v := value.(type) {
	case float64:
		return fmt.Sprintf("%.2f", v)
	case time.Time:
		return v.Format("2006-01-02")
	default:
		return fmt.Sprintf("%v", v)
	}
}
