package graph

import "sort"

// SetSummary describes one disjoint set
type SetSummary struct {
	Representative string   `json:"representative"`
	Label          string   `json:"label"`
	Size           int      `json:"size"`
	Members        []string `json:"members"`
}

// SizeBucket is one bucket in the set-size histogram
type SizeBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// TopologyReport contains the partition of the stored graph into disjoint sets
type TopologyReport struct {
	TotalElements  int          `json:"total_elements"`
	TotalLinks     int          `json:"total_links"`
	DanglingLinks  int          `json:"dangling_links"`
	NumSets        int          `json:"num_sets"`
	LargestSet     int          `json:"largest_set"`
	SmallestSet    int          `json:"smallest_set"`
	SingletonCount int          `json:"singleton_count"`
	SingletonIDs   []string     `json:"singleton_ids"`
	SizeHistogram  []SizeBucket `json:"size_histogram"`
	Largest        []SetSummary `json:"largest"`
}

// ComputeTopology partitions the snapshot with a disjoint-set forest and
// summarizes the sets: counts, singletons, size distribution, largest sets.
func ComputeTopology(snap *Snapshot, topN int) (*TopologyReport, error) {
	if len(snap.Elements) == 0 {
		return &TopologyReport{
			DanglingLinks: snap.Dangling,
			SizeHistogram: defaultHistogram(),
		}, nil
	}

	f, err := snap.Forest()
	if err != nil {
		return nil, err
	}

	sets := f.Components()
	largest, smallest := 0, len(snap.Elements)
	var singletons []string
	buckets := [7]int{}
	for _, members := range sets {
		if len(members) > largest {
			largest = len(members)
		}
		if len(members) < smallest {
			smallest = len(members)
		}
		if len(members) == 1 {
			singletons = append(singletons, members[0])
		}
		buckets[sizeBucket(len(members))]++
	}
	singletonCount := len(singletons)
	sort.Strings(singletons)
	if len(singletons) > topN {
		singletons = singletons[:topN]
	}

	histogram := defaultHistogram()
	for i := range histogram {
		histogram[i].Count = buckets[i]
	}

	// Largest sets: size descending, ties keep universe order
	var summaries []SetSummary
	for _, members := range sets {
		if len(members) < 2 {
			continue
		}
		rep, err := f.FindSet(members[0])
		if err != nil {
			return nil, err
		}
		shown := members
		if len(shown) > topN {
			shown = shown[:topN]
		}
		summaries = append(summaries, SetSummary{
			Representative: rep,
			Label:          snap.Elements[rep].Label,
			Size:           len(members),
			Members:        shown,
		})
	}
	sort.SliceStable(summaries, func(i, j int) bool { return summaries[i].Size > summaries[j].Size })
	if len(summaries) > topN {
		summaries = summaries[:topN]
	}

	return &TopologyReport{
		TotalElements:  len(snap.Elements),
		TotalLinks:     len(snap.Links),
		DanglingLinks:  snap.Dangling,
		NumSets:        f.Count(),
		LargestSet:     largest,
		SmallestSet:    smallest,
		SingletonCount: singletonCount,
		SingletonIDs:   singletons,
		SizeHistogram:  histogram,
		Largest:        summaries,
	}, nil
}

func defaultHistogram() []SizeBucket {
	return []SizeBucket{
		{Label: "1"}, {Label: "2"}, {Label: "3-4"},
		{Label: "5-8"}, {Label: "9-16"}, {Label: "17-32"}, {Label: "33+"},
	}
}

func sizeBucket(size int) int {
	switch {
	case size <= 1:
		return 0
	case size == 2:
		return 1
	case size <= 4:
		return 2
	case size <= 8:
		return 3
	case size <= 16:
		return 4
	case size <= 32:
		return 5
	default:
		return 6
	}
}
