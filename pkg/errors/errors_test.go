package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	err := New("table.VisibleRowPosition", KindHiddenSection, "row %v belongs to hidden section %v", "email", "account")
	got := err.Error()
	if !strings.Contains(got, "table.VisibleRowPosition") {
		t.Errorf("error string %q should contain the op", got)
	}
	if !strings.Contains(got, "hiddenSection") {
		t.Errorf("error string %q should contain the kind", got)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindNotAMember, "notAMember"},
		{KindHiddenSection, "hiddenSection"},
		{KindInternal, "internal"},
		{KindParse, "parse"},
		{KindSurface, "surface"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestHasKind(t *testing.T) {
	err := New("op", KindNotAMember, "nope")
	if !HasKind(err, KindNotAMember) {
		t.Error("expected HasKind to match the error's kind")
	}
	if HasKind(err, KindParse) {
		t.Error("expected HasKind to reject a different kind")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if !HasKind(wrapped, KindNotAMember) {
		t.Error("expected HasKind to unwrap")
	}
	if HasKind(nil, KindNotAMember) {
		t.Error("nil never has a kind")
	}
}

func TestInternalCapturesStack(t *testing.T) {
	err := Internal("reconcile.Reconcile", New("op", KindHiddenSection, "surprise"))
	if err.Kind != KindInternal {
		t.Errorf("expected internal kind, got %v", err.Kind)
	}
	if err.StackTrace == "" {
		t.Error("expected a captured stack trace")
	}
}

type recordingHandler struct {
	got []*Error
}

func (h *recordingHandler) HandleError(err *Error) {
	h.got = append(h.got, err)
}

func TestReportUsesGlobalHandler(t *testing.T) {
	handler := &recordingHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	Report(New("op", KindSurface, "rejected"))
	Report(nil) // ignored

	if len(handler.got) != 1 {
		t.Fatalf("expected 1 handled error, got %d", len(handler.got))
	}
	if handler.got[0].Timestamp.IsZero() {
		t.Error("Report should stamp the error")
	}
}
