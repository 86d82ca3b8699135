package registry

import (
	"testing"

	"github.com/mkostin/wingshot/internal/core"
)

type fakeGame struct {
	id    string
	title string
}

func (g *fakeGame) ID() string                           { return g.id }
func (g *fakeGame) Title() string                        { return g.title }
func (g *fakeGame) Reset(core.RuntimeConfig)             {}
func (g *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *fakeGame) Render(*core.Screen)                  {}
func (g *fakeGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test-alpha", func() Game { return &fakeGame{id: "test-alpha", title: "Alpha"} })

	if !Exists("test-alpha") {
		t.Fatal("registered game not found")
	}

	g, err := Create("test-alpha")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "test-alpha" {
		t.Errorf("ID = %q, expected test-alpha", g.ID())
	}

	// Each Create returns a fresh instance.
	g2, _ := Create("test-alpha")
	if g == g2 {
		t.Error("Create returned a shared instance")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("expected an error for an unknown ID")
	}
	if Exists("no-such-game") {
		t.Error("unknown ID reported as existing")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func() Game { return &fakeGame{id: "test-dup", title: "Dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration did not panic")
		}
	}()
	Register("test-dup", func() Game { return &fakeGame{id: "test-dup", title: "Dup"} })
}

func TestListSorted(t *testing.T) {
	Register("test-zz", func() Game { return &fakeGame{id: "test-zz", title: "ZZ"} })
	Register("test-aa", func() Game { return &fakeGame{id: "test-aa", title: "AA"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("list not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
	found := false
	for _, info := range list {
		if info.ID == "test-aa" && info.Title == "AA" {
			found = true
		}
	}
	if !found {
		t.Error("registered game missing from List")
	}
}
