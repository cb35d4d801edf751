package registry

import (
	"testing"

	"github.com/vovakirdan/moonhop/internal/core"
)

type stubGame struct{ id string }

func (s *stubGame) ID() string                            { return s.id }
func (s *stubGame) Title() string                         { return "Stub" }
func (s *stubGame) Reset(core.RuntimeConfig)              {}
func (s *stubGame) Step(core.InputFrame) core.StepResult  { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen)                   {}
func (s *stubGame) State() core.GameState                 { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register(GameInfo{ID: "zz_stub", Title: "Stub", Description: "test only"}, func() Game {
		return &stubGame{id: "zz_stub"}
	})

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID = %q", g.ID())
	}

	info, ok := Lookup("zz_stub")
	if !ok || info.Description != "test only" {
		t.Errorf("Lookup = %+v, %v", info, ok)
	}

	found := false
	list := List()
	for i, gi := range list {
		if gi.ID == "zz_stub" {
			found = true
		}
		if i > 0 && list[i-1].ID > gi.ID {
			t.Error("List is not sorted by ID")
		}
	}
	if !found {
		t.Error("registered game missing from List")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does_not_exist"); err == nil {
		t.Error("expected error for an unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(GameInfo{ID: "zz_dup"}, func() Game { return &stubGame{} })
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register(GameInfo{ID: "zz_dup"}, func() Game { return &stubGame{} })
}
