package registry

import (
	"testing"

	"github.com/vovakirdan/glyph-rush/internal/core"
)

type stubGame struct{ id string }

func (s *stubGame) ID() string                           { return s.id }
func (s *stubGame) Title() string                        { return "Stub " + s.id }
func (s *stubGame) Reset(core.RuntimeConfig)             {}
func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen)                  {}
func (s *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub"} })

	if !Exists("zz_stub") {
		t.Fatal("stub not registered")
	}
	g, err := Create("zz_stub")
	if err != nil {
		t.Fatal(err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID = %q", g.ID())
	}
	if got := Title("zz_stub"); got != "Stub zz_stub" {
		t.Errorf("Title = %q", got)
	}
	if got := Title("nope"); got != "nope" {
		t.Errorf("Title of unknown game = %q, expected the ID", got)
	}

	found := false
	list := List()
	for i, info := range list {
		if i > 0 && list[i-1].ID > info.ID {
			t.Error("List is not sorted")
		}
		if info.ID == "zz_stub" {
			found = true
		}
	}
	if !found {
		t.Error("stub missing from List")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does_not_exist"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}
