package wm

import "testing"

func TestComputeTagbarMarksSelectedTagAsSelectedScheme(t *testing.T) {
	m := &Monitor{tagset: [2]uint{1 << 2, 1 << 2}, SelectedTags: 0}
	c := &Client{Tags: 1 << 2, Mon: m}
	m.clients = c
	m.Sel = c

	labels := [NumTags]string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}
	model := ComputeTagbar(m, labels, false, "")

	if model.Tags[2].Scheme != SchemeSelected {
		t.Fatalf("tag[2].Scheme = %v, want SchemeSelected", model.Tags[2].Scheme)
	}
	if !model.Tags[2].Occupied {
		t.Fatalf("tag[2].Occupied = false, want true")
	}
	if model.CenterScheme != SchemeSelected {
		t.Fatalf("CenterScheme = %v, want SchemeSelected when Sel is set", model.CenterScheme)
	}
}

func TestComputeTagbarUrgentTakesPriorityOverSelected(t *testing.T) {
	m := &Monitor{tagset: [2]uint{1, 1}, SelectedTags: 0}
	c := &Client{Tags: 1, Mon: m, Urgent: true}
	m.clients = c

	labels := [NumTags]string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}
	model := ComputeTagbar(m, labels, false, "")

	if model.Tags[0].Scheme != SchemeUrgent {
		t.Fatalf("tag[0].Scheme = %v, want SchemeUrgent", model.Tags[0].Scheme)
	}
}

func TestComputeTagbarHidesInactiveUnoccupiedTagsWhenConfigured(t *testing.T) {
	m := &Monitor{tagset: [2]uint{1, 1}, SelectedTags: 0}
	labels := [NumTags]string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}
	model := ComputeTagbar(m, labels, true, "")

	if len(model.Tags) != 1 {
		t.Fatalf("len(Tags) = %d, want 1 (only the active, unoccupied tag survives hide_inactive_tags)", len(model.Tags))
	}
	if model.Tags[0].Index != 0 {
		t.Fatalf("Tags[0].Index = %d, want 0", model.Tags[0].Index)
	}
}

func TestTabSchemeSelectedBeatsUrgentAndMinimized(t *testing.T) {
	m := &Monitor{}
	c := &Client{Urgent: true, Minimized: true}
	m.Sel = c
	if got := tabScheme(m, c); got != SchemeSelected {
		t.Fatalf("tabScheme() = %v, want SchemeSelected", got)
	}
}

func TestTabSchemeUrgentBeatsMinimized(t *testing.T) {
	m := &Monitor{}
	c := &Client{Urgent: true, Minimized: true}
	if got := tabScheme(m, c); got != SchemeUrgent {
		t.Fatalf("tabScheme() = %v, want SchemeUrgent", got)
	}
}

func TestComputeClientbarNoTruncationKeepsNaturalWidths(t *testing.T) {
	m := &Monitor{tagset: [2]uint{1, 1}, SelectedTags: 0}
	a := &Client{Tags: 1, Mon: m, Name: "a"}
	b := &Client{Tags: 1, Mon: m, Name: "bb"}
	chainClients(m, a, b)

	measure := func(s string) int { return len(s) * 10 }
	model := ComputeClientbar(m, measure, 1000, 50)

	if len(model.Tabs) != 2 {
		t.Fatalf("len(Tabs) = %d, want 2", len(model.Tabs))
	}
	if model.Tabs[0].Width != 10 || model.Tabs[1].Width != 20 {
		t.Fatalf("widths = %d,%d, want natural 10,20 (no truncation needed)", model.Tabs[0].Width, model.Tabs[1].Width)
	}
}

func TestComputeClientbarEmptyWhenNoVisibleClients(t *testing.T) {
	m := &Monitor{tagset: [2]uint{1, 1}, SelectedTags: 0}
	model := ComputeClientbar(m, func(string) int { return 0 }, 1000, 50)
	if len(model.Tabs) != 0 {
		t.Fatalf("len(Tabs) = %d, want 0", len(model.Tabs))
	}
}

func TestComputeClientbarTruncatesWhenWidthExceedsAvailableSpace(t *testing.T) {
	m := &Monitor{tagset: [2]uint{1, 1}, SelectedTags: 0}
	a := &Client{Tags: 1, Mon: m, Name: "a"}
	b := &Client{Tags: 1, Mon: m, Name: "b"}
	c := &Client{Tags: 1, Mon: m, Name: "c"}
	chainClients(m, a, b, c)

	measure := func(string) int { return 200 }
	model := ComputeClientbar(m, measure, 300, 0)

	total := 0
	for _, tab := range model.Tabs {
		total += tab.Width
	}
	if total > 300 {
		t.Fatalf("total tab width = %d, want <= available width 300", total)
	}
}
