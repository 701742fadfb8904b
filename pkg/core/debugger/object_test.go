package debugger

import (
	"testing"

	"github.com/google/uuid"
)

type component struct{}

func TestNewHandle(t *testing.T) {
	h := NewHandle("Player", "UnityEngine.Transform")

	if h.Name() != "Player" {
		t.Errorf("Name() = %v, want Player", h.Name())
	}
	if h.TypeName() != "UnityEngine.Transform" {
		t.Errorf("TypeName() = %v, want UnityEngine.Transform", h.TypeName())
	}
	if h.ID() == uuid.Nil {
		t.Error("NewHandle() should assign an instance ID")
	}
	if other := NewHandle("Player", "UnityEngine.Transform"); other.ID() == h.ID() {
		t.Error("handles should get distinct IDs")
	}
	if h.String() != "Player (UnityEngine.Transform)" {
		t.Errorf("String() = %v", h.String())
	}
}

func TestHandleOf(t *testing.T) {
	if got := HandleOf(&component{}, "c").TypeName(); got != "*debugger.component" {
		t.Errorf("HandleOf(&component{}).TypeName() = %v", got)
	}
	if got := HandleOf(nil, "n").TypeName(); got != "<nil>" {
		t.Errorf("HandleOf(nil).TypeName() = %v", got)
	}
}

func TestHandle_Destroy(t *testing.T) {
	h := NewHandle("Enemy", "GameObject")
	if h.IsNil() {
		t.Fatal("fresh handle should not be nil")
	}
	h.Destroy()
	if !h.IsNil() {
		t.Error("destroyed handle should be nil")
	}

	var missing *Handle
	if !missing.IsNil() {
		t.Error("nil *Handle should be nil")
	}
	if got := missing.String(); got != "<nil>" {
		t.Errorf("nil *Handle String() = %q, want <nil>", got)
	}
}

// sprite implements Object on a pointer receiver without a nil guard
type sprite struct{ name string }

func (s *sprite) Name() string     { return s.name }
func (s *sprite) TypeName() string { return "Sprite" }

func TestIsNilObject(t *testing.T) {
	var (
		nilHandle *Handle
		nilSprite *sprite
	)
	destroyed := NewHandle("gone", "GameObject")
	destroyed.Destroy()

	tests := []struct {
		name string
		ctx  Object
		want bool
	}{
		{"untyped nil", nil, true},
		{"nil handle", nilHandle, true},
		{"typed nil custom object", nilSprite, true},
		{"destroyed handle", destroyed, false},
		{"live sprite", &sprite{name: "hero"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNilObject(tt.ctx); got != tt.want {
				t.Errorf("IsNilObject() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsNull(t *testing.T) {
	var (
		nilPtr   *component
		nilMap   map[string]int
		nilSlice []int
		nilFunc  func()
		nilChan  chan int
		nilIface error
	)
	destroyed := NewHandle("gone", "GameObject")
	destroyed.Destroy()

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"untyped nil", nil, true},
		{"nil pointer", nilPtr, true},
		{"nil map", nilMap, true},
		{"nil slice", nilSlice, true},
		{"nil func", nilFunc, true},
		{"nil chan", nilChan, true},
		{"nil interface", nilIface, true},
		{"destroyed handle", destroyed, true},
		{"pointer", &component{}, false},
		{"struct", component{}, false},
		{"zero int", 0, false},
		{"empty string", "", false},
		{"empty slice", []int{}, false},
		{"live handle", NewHandle("here", "GameObject"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isNull(tt.value); got != tt.want {
				t.Errorf("isNull(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestNullMessage(t *testing.T) {
	ctx := NewHandle("Player", "PlayerController")
	want := "rigidbody in object Player ( PlayerController ) is null!"
	if got := nullMessage("rigidbody", ctx); got != want {
		t.Errorf("nullMessage() = %q, want %q", got, want)
	}

	want = "rigidbody in object <nil> ( <nil> ) is null!"
	if got := nullMessage("rigidbody", nil); got != want {
		t.Errorf("nullMessage(nil ctx) = %q, want %q", got, want)
	}

	var missing *Handle
	if got := nullMessage("rigidbody", missing); got != want {
		t.Errorf("nullMessage(nil *Handle) = %q, want %q", got, want)
	}

	var nilSprite *sprite
	if got := nullMessage("rigidbody", nilSprite); got != want {
		t.Errorf("nullMessage(nil *sprite) = %q, want %q", got, want)
	}

	ctx.Destroy()
	want = "rigidbody in object Player ( PlayerController ) is null!"
	if got := nullMessage("rigidbody", ctx); got != want {
		t.Errorf("nullMessage(destroyed ctx) = %q, want %q", got, want)
	}
}
