package tree

import "testing"

func TestLCA_Example(t *testing.T) {
	root := Example()
	tests := []struct {
		x, y, want int
	}{
		{7, 6, 3},
		{7, 8, 3},
		{4, 8, 1},
		{5, 7, 5},
		{7, 5, 5},
		{4, 4, 4},
		{2, 4, 2},
		{1, 8, 1},
	}
	for _, tt := range tests {
		x, y := Find(root, tt.x), Find(root, tt.y)
		got, ok := LCA(root, x, y)
		if !ok {
			t.Errorf("LCA(%d, %d): not found", tt.x, tt.y)
			continue
		}
		if got.Value != tt.want {
			t.Errorf("LCA(%d, %d) = %d, want %d", tt.x, tt.y, got.Value, tt.want)
		}
	}
}

func TestLCA_NodeOutsideTree(t *testing.T) {
	root := Example()
	stranger := &Node{Value: 7}
	if _, ok := LCA(root, Find(root, 7), stranger); ok {
		t.Error("a node with an equal value but different identity is not in the tree")
	}
	if _, ok := LCA(root, nil, Find(root, 2)); ok {
		t.Error("nil node is not in the tree")
	}
}

func TestFind_Missing(t *testing.T) {
	if n := Find(Example(), 42); n != nil {
		t.Errorf("Find(42) = %v, want nil", n.Value)
	}
}
