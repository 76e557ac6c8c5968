package table

import (
	"testing"

	"github.com/go-drift/tablediff/pkg/errors"
)

func TestVisibleSectionIndex_SkipsHidden(t *testing.T) {
	first := NewSection(NewRow())
	second := NewSection(NewRow())
	third := NewSection(NewRow())
	tbl := New(first, second, third)

	tbl.SetSectionHidden(first, true)

	got, err := tbl.VisibleSectionIndex(third)
	if err != nil {
		t.Fatalf("VisibleSectionIndex: %v", err)
	}
	if got != 1 {
		t.Errorf("expected index 1 with one hidden predecessor, got %d", got)
	}
}

func TestVisibleSectionIndex_NotAMember(t *testing.T) {
	tbl, _, _ := buildTable()
	_, err := tbl.VisibleSectionIndex(NewSection())
	if !errors.HasKind(err, errors.KindNotAMember) {
		t.Fatalf("expected notAMember error, got %v", err)
	}
}

func TestVisibleRowPosition_CountsVisiblePredecessors(t *testing.T) {
	tbl, _, rows := buildTable()

	// A row's resolved index equals the count of non-hidden siblings
	// before it.
	tbl.SetRowHidden(rows[0], true)

	pos, err := tbl.VisibleRowPosition(rows[2])
	if err != nil {
		t.Fatalf("VisibleRowPosition: %v", err)
	}
	if pos != (Position{Section: 0, Row: 1}) {
		t.Errorf("expected (0,1), got (%d,%d)", pos.Section, pos.Row)
	}

	tbl.SetRowHidden(rows[1], true)
	pos, err = tbl.VisibleRowPosition(rows[2])
	if err != nil {
		t.Fatalf("VisibleRowPosition: %v", err)
	}
	if pos != (Position{Section: 0, Row: 0}) {
		t.Errorf("expected (0,0) with two hidden predecessors, got (%d,%d)", pos.Section, pos.Row)
	}
}

func TestVisibleRowPosition_SectionComponentSkipsHiddenSections(t *testing.T) {
	hiddenTop := NewSection(NewRow())
	target := NewRow()
	second := NewSection(target)
	tbl := New(hiddenTop, second)
	tbl.SetSectionHidden(hiddenTop, true)

	pos, err := tbl.VisibleRowPosition(target)
	if err != nil {
		t.Fatalf("VisibleRowPosition: %v", err)
	}
	if pos != (Position{Section: 0, Row: 0}) {
		t.Errorf("expected (0,0), got (%d,%d)", pos.Section, pos.Row)
	}
}

func TestVisibleRowPosition_HiddenOwningSection(t *testing.T) {
	tbl, account, rows := buildTable()
	tbl.SetSectionHidden(account, true)

	_, err := tbl.VisibleRowPosition(rows[0])
	if !errors.HasKind(err, errors.KindHiddenSection) {
		t.Fatalf("expected hiddenSection error, got %v", err)
	}
}

func TestVisibleRowPosition_DetachedRow(t *testing.T) {
	tbl, _, _ := buildTable()
	_, err := tbl.VisibleRowPosition(NewRow())
	if !errors.HasKind(err, errors.KindNotAMember) {
		t.Fatalf("expected notAMember error, got %v", err)
	}

	// A row attached to a section that no table owns is just as foreign.
	stray := NewRow()
	NewSection(stray)
	_, err = tbl.VisibleRowPosition(stray)
	if !errors.HasKind(err, errors.KindNotAMember) {
		t.Fatalf("expected notAMember error, got %v", err)
	}
}

func TestVisibleRowPosition_HiddenRowItself(t *testing.T) {
	tbl, _, rows := buildTable()
	tbl.SetRowHidden(rows[1], true)

	// The index of a hidden row is still the count of visible rows before
	// it: that is the slot it lands in when it becomes visible again.
	pos, err := tbl.VisibleRowPosition(rows[1])
	if err != nil {
		t.Fatalf("VisibleRowPosition: %v", err)
	}
	if pos != (Position{Section: 0, Row: 1}) {
		t.Errorf("expected (0,1), got (%d,%d)", pos.Section, pos.Row)
	}
}
