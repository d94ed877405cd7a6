package graph

import (
	"fmt"

	"mycelica/forest/internal/forest"
)

// ElementInfo is a lightweight element representation decoupled from DB types
type ElementInfo struct {
	ID        string
	Label     string
	CreatedAt int64
}

// LinkInfo is a lightweight link representation
type LinkInfo struct {
	ID        int64
	Source    string
	Target    string
	CreatedAt int64
}

// Snapshot holds the element universe and the links to replay over it
type Snapshot struct {
	Elements map[string]*ElementInfo
	Links    []LinkInfo // only links whose endpoints are both elements
	Dangling int        // links dropped for naming an unknown element

	order []string
}

// NewSnapshot builds a Snapshot from raw elements and links.
// The first occurrence of a repeated element ID wins.
func NewSnapshot(elements []*ElementInfo, links []LinkInfo) *Snapshot {
	elemMap := make(map[string]*ElementInfo, len(elements))
	order := make([]string, 0, len(elements))

	for _, e := range elements {
		if _, ok := elemMap[e.ID]; ok {
			continue
		}
		elemMap[e.ID] = e
		order = append(order, e.ID)
	}

	var kept []LinkInfo
	dangling := 0
	for _, l := range links {
		_, okS := elemMap[l.Source]
		_, okT := elemMap[l.Target]
		if !okS || !okT {
			dangling++
			continue
		}
		kept = append(kept, l)
	}

	return &Snapshot{
		Elements: elemMap,
		Links:    kept,
		Dangling: dangling,
		order:    order,
	}
}

// ElementIDs returns element IDs in insertion order, which is the forest's universe order
func (s *Snapshot) ElementIDs() []string {
	ids := make([]string, len(s.order))
	copy(ids, s.order)
	return ids
}

// Forest builds a disjoint-set forest over the elements and replays every link in order
func (s *Snapshot) Forest() (*forest.Forest[string], error) {
	f, err := forest.New(s.order)
	if err != nil {
		return nil, fmt.Errorf("building forest: %w", err)
	}
	for _, l := range s.Links {
		if _, err := f.Union(l.Source, l.Target); err != nil {
			return nil, fmt.Errorf("replaying link %d: %w", l.ID, err)
		}
	}
	return f, nil
}
