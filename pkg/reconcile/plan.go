package reconcile

import (
	"slices"

	"github.com/go-drift/tablediff/pkg/animation"
	"github.com/go-drift/tablediff/pkg/table"
)

// Plan is the outcome of one reconciliation: six operation buckets, each
// mapping an animation style to the positions the rendering surface must
// act on. Row buckets hold positions; section buckets hold duplicate-free
// section indices (animating the same section twice in one transaction
// glitches on most surfaces).
//
// Deletion and reload entries are expressed against the layout before the
// batch; insertion entries against the layout after it. That matches how
// animated batch updates are specified by list surfaces.
type Plan struct {
	InsertRows map[animation.Style][]table.Position
	DeleteRows map[animation.Style][]table.Position
	ReloadRows map[animation.Style][]table.Position

	InsertSections map[animation.Style][]int
	DeleteSections map[animation.Style][]int
	ReloadSections map[animation.Style][]int
}

// NewPlan returns an empty plan with all six buckets allocated.
func NewPlan() *Plan {
	return &Plan{
		InsertRows:     make(map[animation.Style][]table.Position),
		DeleteRows:     make(map[animation.Style][]table.Position),
		ReloadRows:     make(map[animation.Style][]table.Position),
		InsertSections: make(map[animation.Style][]int),
		DeleteSections: make(map[animation.Style][]int),
		ReloadSections: make(map[animation.Style][]int),
	}
}

// Empty reports whether the plan contains no operations.
func (p *Plan) Empty() bool {
	return len(p.InsertRows) == 0 && len(p.DeleteRows) == 0 && len(p.ReloadRows) == 0 &&
		len(p.InsertSections) == 0 && len(p.DeleteSections) == 0 && len(p.ReloadSections) == 0
}

func addRow(bucket map[animation.Style][]table.Position, style animation.Style, pos table.Position) {
	bucket[style] = append(bucket[style], pos)
}

// addSection inserts index into the style's entry unless already present.
func addSection(bucket map[animation.Style][]int, style animation.Style, index int) {
	if slices.Contains(bucket[style], index) {
		return
	}
	bucket[style] = append(bucket[style], index)
}

// RowStyles returns the styles present in a row bucket in ascending order,
// for deterministic emission.
func RowStyles(bucket map[animation.Style][]table.Position) []animation.Style {
	styles := make([]animation.Style, 0, len(bucket))
	for style := range bucket {
		styles = append(styles, style)
	}
	slices.Sort(styles)
	return styles
}

// SectionStyles is [RowStyles] for a section bucket.
func SectionStyles(bucket map[animation.Style][]int) []animation.Style {
	styles := make([]animation.Style, 0, len(bucket))
	for style := range bucket {
		styles = append(styles, style)
	}
	slices.Sort(styles)
	return styles
}
