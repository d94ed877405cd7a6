package scenario

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"

	"mycelica/forest/internal/forest"
)

const clrs = `
name = "clrs-21"
universe = ["1", "2", "3", "4", "5"]

[[step]]
op = "find"
x = "5"

[[step]]
op = "union"
x = "4"
y = "3"

[[step]]
op = "union"
x = "2"
y = "1"

[[step]]
op = "union"
x = "4"
y = "5"

[[step]]
op = "link"
x = "1"
y = "3"

[[step]]
op = "connected"
x = "2"
y = "5"
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(clrs))
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "clrs-21" {
		t.Errorf("Name = %q", s.Name)
	}
	if diff := cmp.Diff([]string{"1", "2", "3", "4", "5"}, s.Universe); diff != "" {
		t.Errorf("Universe (-want +got):\n%s", diff)
	}
	if len(s.Steps) != 6 || s.Steps[1] != (Step{Op: "union", X: "4", Y: "3"}) {
		t.Errorf("unexpected steps: %+v", s.Steps)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing op", "universe = [\"a\"]\n[[step]]\nx = \"a\"\n"},
		{"unknown op", "universe = [\"a\"]\n[[step]]\nop = \"split\"\nx = \"a\"\n"},
		{"find without x", "universe = [\"a\"]\n[[step]]\nop = \"find\"\n"},
		{"union without y", "universe = [\"a\"]\n[[step]]\nop = \"union\"\nx = \"a\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestParse_BadTOML(t *testing.T) {
	_, err := Parse([]byte("universe = [1, "))
	if err == nil || errors.Is(err, ErrInvalid) {
		t.Errorf("expected a decode error, got %v", err)
	}
}

func TestRun_CLRS(t *testing.T) {
	s, err := Parse([]byte(clrs))
	if err != nil {
		t.Fatal(err)
	}
	r := &Runner{Logger: zaptest.NewLogger(t)}
	res, err := r.Run(s)
	if err != nil {
		t.Fatal(err)
	}

	if res.Steps[0].Representative != "5" {
		t.Errorf("find(5) = %q, want 5", res.Steps[0].Representative)
	}
	wantReps := [][]string{
		{"1", "2", "3", "4", "5"},
		{"1", "2", "3", "3", "5"},
		{"1", "1", "3", "3", "5"},
		{"1", "1", "3", "3", "3"},
		{"3", "3", "3", "3", "3"},
		{"3", "3", "3", "3", "3"},
	}
	for i, want := range wantReps {
		if diff := cmp.Diff(want, res.Steps[i].Representatives); diff != "" {
			t.Errorf("step %d representatives (-want +got):\n%s", i+1, diff)
		}
	}
	for i := 1; i <= 4; i++ {
		if !res.Steps[i].Merged {
			t.Errorf("step %d should have merged", i+1)
		}
	}
	if !res.Steps[5].Connected {
		t.Error("2 and 5 should be connected at the end")
	}
	if res.Sets != 1 {
		t.Errorf("Sets = %d, want 1", res.Sets)
	}
}

// Parents shows the tree each step left behind, before the
// Representatives pass compresses it.
func TestRun_ParentsBeforeCompression(t *testing.T) {
	s, err := Parse([]byte(clrs))
	if err != nil {
		t.Fatal(err)
	}
	res, err := (&Runner{}).Run(s)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"{1:1 2:2 3:3 4:4 5:5}",
		"{1:1 2:2 3:3 4:3 5:5}",
		"{1:1 2:1 3:3 4:3 5:5}",
		"{1:1 2:1 3:3 4:3 5:3}",
		"{1:3 2:1 3:3 4:3 5:3}",
		"{1:3 2:3 3:3 4:3 5:3}",
	}
	var got []string
	for _, st := range res.Steps {
		got = append(got, st.Parents)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("per-step parents (-want +got):\n%s", diff)
	}
}

func TestRun_UnknownElement(t *testing.T) {
	s := &Scenario{
		Universe: []string{"a", "b"},
		Steps:    []Step{{Op: OpUnion, X: "a", Y: "b"}, {Op: OpFind, X: "z"}},
	}
	res, err := (&Runner{}).Run(s)
	if !errors.Is(err, forest.ErrUnknownElement) {
		t.Fatalf("expected ErrUnknownElement, got %v", err)
	}
	if len(res.Steps) != 1 {
		t.Errorf("steps before the failure should be kept, got %d", len(res.Steps))
	}
}

func TestRun_DuplicateUniverse(t *testing.T) {
	s := &Scenario{Universe: []string{"a", "a"}}
	if _, err := (&Runner{}).Run(s); !errors.Is(err, forest.ErrDuplicateElement) {
		t.Errorf("expected ErrDuplicateElement, got %v", err)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "none.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "s.toml")
	if err := os.WriteFile(path, []byte(clrs), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *Scenario, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, zaptest.NewLogger(t), func(s *Scenario, err error) {
			if err == nil {
				reloaded <- s
			}
		})
	}()

	updated := "name = \"updated\"\nuniverse = [\"x\"]\n"
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(200 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case s := <-reloaded:
			if s.Name != "updated" {
				t.Errorf("reloaded name = %q, want updated", s.Name)
			}
			cancel()
			if err := <-done; err != nil {
				t.Errorf("Watch returned %v", err)
			}
			return
		case <-tick.C:
			// Keep replacing the file until the watcher has registered the directory.
			tmp := filepath.Join(dir, "s.toml.tmp")
			if err := os.WriteFile(tmp, []byte(updated), 0o644); err != nil {
				t.Fatal(err)
			}
			if err := os.Rename(tmp, path); err != nil {
				t.Fatal(err)
			}
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}
