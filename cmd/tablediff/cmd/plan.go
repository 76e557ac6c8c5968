package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-drift/tablediff/cmd/tablediff/internal/scenario"
	"github.com/go-drift/tablediff/pkg/animation"
	"github.com/go-drift/tablediff/pkg/reconcile"
	"github.com/go-drift/tablediff/pkg/surface"
	"github.com/go-drift/tablediff/pkg/table"
)

func init() {
	RegisterCommand(&Command{
		Name:  "plan",
		Short: "Print the update operations a scenario produces",
		Long: `Plan loads a YAML scenario (a table layout plus a batch of pending
visibility changes), reconciles the batch, and prints the structural
update operations in the order an animated list surface would receive
them.`,
		Usage: "tablediff plan <scenario.yaml>",
		Run:   runPlan,
	})
}

func runPlan(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("plan expects exactly one scenario file")
	}

	sc, err := scenario.Load(args[0])
	if err != nil {
		return err
	}
	log.Debug().
		Int("sections", len(sc.Table.Sections())).
		Int("changes", sc.Changes.Len()).
		Msg("scenario loaded")

	plan, err := reconcile.New(sc.Table).Reconcile(&sc.Changes)
	if err != nil {
		return err
	}
	if plan.Empty() {
		fmt.Println("no operations")
		return nil
	}

	// The printing surface receives the plan exactly as a real rendering
	// surface would: one transaction, fixed class order, one call per style.
	surface.Apply(printSurface{out: os.Stdout}, plan, nil)
	return nil
}

// printSurface renders each batch operation as one line of text.
type printSurface struct {
	out io.Writer
}

func (p printSurface) PerformBatchUpdates(body func(surface.Batch), completion func(error)) {
	body(printBatch{out: p.out})
	if completion != nil {
		completion(nil)
	}
}

type printBatch struct {
	out io.Writer
}

func (b printBatch) line(name string, style animation.Style, targets string) {
	fmt.Fprintf(b.out, "%-16s %-12s %s\n", name, style, targets)
}

func (b printBatch) InsertRows(positions []table.Position, style animation.Style) {
	b.line("insert rows", style, formatPositions(positions))
}

func (b printBatch) DeleteRows(positions []table.Position, style animation.Style) {
	b.line("delete rows", style, formatPositions(positions))
}

func (b printBatch) InsertSections(indices []int, style animation.Style) {
	b.line("insert sections", style, formatIndices(indices))
}

func (b printBatch) DeleteSections(indices []int, style animation.Style) {
	b.line("delete sections", style, formatIndices(indices))
}

func (b printBatch) ReloadRows(positions []table.Position, style animation.Style) {
	b.line("reload rows", style, formatPositions(positions))
}

func (b printBatch) ReloadSections(indices []int, style animation.Style) {
	b.line("reload sections", style, formatIndices(indices))
}

func formatPositions(positions []table.Position) string {
	parts := make([]string, len(positions))
	for i, pos := range positions {
		parts[i] = fmt.Sprintf("(%d,%d)", pos.Section, pos.Row)
	}
	return strings.Join(parts, " ")
}

func formatIndices(indices []int) string {
	parts := make([]string, len(indices))
	for i, index := range indices {
		parts[i] = fmt.Sprintf("%d", index)
	}
	return strings.Join(parts, " ")
}
