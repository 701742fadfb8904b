package debugger_test

import (
	"errors"
	"testing"

	"github.com/msto63/debugger/pkg/core/debugger"
	"github.com/msto63/debugger/pkg/core/debugger/debuggertest"
)

func TestDefault_StartupState(t *testing.T) {
	if debugger.Default() == nil {
		t.Fatal("Default() should not be nil")
	}
	if debugger.Enabled() != debugger.BuildIsDebug {
		t.Errorf("Enabled() = %v, want %v", debugger.Enabled(), debugger.BuildIsDebug)
	}
	if debugger.Level() != debugger.Info {
		t.Errorf("Level() = %v, want info", debugger.Level())
	}
}

func TestDefault_PackageFunctions(t *testing.T) {
	rec := debuggertest.NewRecorder()
	previous := debugger.SetDefault(debugger.New(debugger.WithSink(rec)))
	defer debugger.SetDefault(previous)

	debugger.SetEnabled(true)
	debugger.SetLevel(debugger.Warning)
	if !debugger.Enabled() || debugger.Level() != debugger.Warning {
		t.Fatalf("state = %v/%v, want true/warning", debugger.Enabled(), debugger.Level())
	}

	debugger.Log("dropped")
	debugger.Logf("dropped %d", 1)
	debugger.LogWarning("kept")
	debugger.LogWarningf("kept %d", 2)
	debugger.LogError("kept")
	debugger.LogErrorf("kept %d", 3)
	debugger.LogException(errors.New("kept"))
	debugger.AssertNotNull(nil, "ref", debugger.NewHandle("Obj", "Type"))

	if rec.Len() != 6 {
		t.Errorf("emissions = %d, want 6", rec.Len())
	}

	if err := debugger.Check(false, "nope"); err == nil {
		t.Error("Check(false) should fail while enabled")
	}
	if err := catch(func() { debugger.Assert(false, "nope") }); err == nil || err.Error() != "nope" {
		t.Errorf("Assert(false) = %v, want nope", err)
	}

	debugger.SetEnabled(false)
	debugger.Assert(false)
	debugger.LogError("dropped")
	if rec.Len() != 6 {
		t.Errorf("disabled default emitted: %d entries", rec.Len())
	}
}

func TestSetDefault(t *testing.T) {
	mine := debugger.New()
	previous := debugger.SetDefault(mine)
	defer debugger.SetDefault(previous)

	if debugger.Default() != mine {
		t.Error("SetDefault() not applied")
	}

	debugger.SetDefault(nil)
	if debugger.Default() == nil || debugger.Default() == mine {
		t.Error("SetDefault(nil) should install a fresh Debugger")
	}
}
