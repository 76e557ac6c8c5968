package reconcile

import (
	"testing"

	"github.com/go-drift/tablediff/pkg/animation"
	"github.com/go-drift/tablediff/pkg/table"
)

func TestChangeSet_RecordsInArrivalOrder(t *testing.T) {
	r1, r2 := table.NewRow(), table.NewRow()
	table.NewSection(r1, r2)

	var cs ChangeSet
	cs.HideRow(r1, animation.Fade)
	cs.ShowRow(r2, animation.SlideTop)
	cs.ReloadRow(r1, animation.None)

	if cs.Len() != 3 {
		t.Fatalf("expected 3 requests, got %d", cs.Len())
	}
	want := []rowRequest{
		{kind: opHide, style: animation.Fade, row: r1},
		{kind: opShow, style: animation.SlideTop, row: r2},
		{kind: opReload, style: animation.None, row: r1},
	}
	for i, req := range cs.rows {
		if req != want[i] {
			t.Errorf("request %d: got %+v, want %+v", i, req, want[i])
		}
	}
}

func TestChangeSet_NilTargetsIgnored(t *testing.T) {
	var cs ChangeSet
	cs.ShowRow(nil, animation.Fade)
	cs.HideSection(nil, animation.Fade)
	if !cs.Empty() {
		t.Error("nil targets must not be recorded")
	}
}

func TestChangeSet_Reset(t *testing.T) {
	var cs ChangeSet
	cs.HideSection(table.NewSection(), animation.Fade)
	cs.HideRow(table.NewRow(), animation.Fade)
	cs.Reset()
	if !cs.Empty() {
		t.Error("expected empty change set after Reset")
	}
}
