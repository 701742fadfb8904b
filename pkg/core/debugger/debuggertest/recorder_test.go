package debuggertest

import (
	"errors"
	"testing"

	"github.com/msto63/debugger/pkg/core/debugger"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	ctx := debugger.NewHandle("Player", "Transform")

	r.Log("a", ctx)
	r.LogWarning("b", nil)
	r.LogError("c", nil)
	r.LogException(errors.New("d"), nil)

	want := []debugger.LogLevel{debugger.Info, debugger.Warning, debugger.Error, debugger.Exception}
	entries := r.Entries()
	if len(entries) != len(want) {
		t.Fatalf("Len() = %d, want %d", len(entries), len(want))
	}
	for i, level := range want {
		if entries[i].Level != level {
			t.Errorf("entries[%d].Level = %v, want %v", i, entries[i].Level, level)
		}
	}
	if entries[0].Context != debugger.Object(ctx) {
		t.Errorf("entries[0].Context = %v, want Player", entries[0].Context)
	}

	r.Reset()
	if r.Len() != 0 {
		t.Errorf("Len() after Reset = %d", r.Len())
	}
}

func TestRecorder_NilException(t *testing.T) {
	r := NewRecorder()
	r.LogException(nil, nil)

	entries := r.Entries()
	if len(entries) != 1 {
		t.Fatalf("Len() = %d, want 1", len(entries))
	}
	if entries[0].Message != "" || entries[0].Err != nil {
		t.Errorf("entry = %+v, want empty exception", entries[0])
	}
}
