package graph

import "mycelica/forest/internal/db"

// SnapshotFromDB loads a Snapshot from the database
func SnapshotFromDB(d *db.DB) (*Snapshot, error) {
	dbElements, err := d.AllElements()
	if err != nil {
		return nil, err
	}
	dbLinks, err := d.AllLinks()
	if err != nil {
		return nil, err
	}

	elements := make([]*ElementInfo, 0, len(dbElements))
	for _, e := range dbElements {
		elements = append(elements, &ElementInfo{
			ID:        e.ID,
			Label:     e.Label,
			CreatedAt: e.CreatedAt,
		})
	}

	links := make([]LinkInfo, 0, len(dbLinks))
	for _, l := range dbLinks {
		links = append(links, LinkInfo{
			ID:        l.ID,
			Source:    l.SourceID,
			Target:    l.TargetID,
			CreatedAt: l.CreatedAt,
		})
	}

	return NewSnapshot(elements, links), nil
}
