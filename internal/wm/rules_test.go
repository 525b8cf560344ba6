package wm

import "testing"

func TestMatchRuleUnionsTagsAcrossMatches(t *testing.T) {
	rules := []Rule{
		{Class: "Firefox", Tags: 1 << 1, Monitor: -1},
		{Class: "Firefox", Tags: 1 << 3, Monitor: -1},
		{Class: "Other", Tags: 1 << 8, Monitor: -1},
	}
	tags, floating, monitor := MatchRule(rules, WindowIdentity{Class: "Firefox"})
	if tags != 1<<1|1<<3 {
		t.Fatalf("tags = %b, want %b", tags, 1<<1|1<<3)
	}
	if floating {
		t.Fatalf("floating = true, want false")
	}
	if monitor != -1 {
		t.Fatalf("monitor = %d, want -1", monitor)
	}
}

func TestMatchRuleFirstSetterWinsForFloatingAndMonitor(t *testing.T) {
	rules := []Rule{
		{Class: "Term", Monitor: -1},
		{Class: "Term", Floating: true, Monitor: 1},
		{Class: "Term", Monitor: 2},
	}
	_, floating, monitor := MatchRule(rules, WindowIdentity{Class: "Term"})
	if !floating {
		t.Fatalf("floating = false, want true")
	}
	if monitor != 1 {
		t.Fatalf("monitor = %d, want 1 (first rule that sets it)", monitor)
	}
}

func TestMatchRuleEmptyPredicateMatchesAnything(t *testing.T) {
	rules := []Rule{{Tags: 1}}
	tags, _, _ := MatchRule(rules, WindowIdentity{Class: "Anything", Instance: "whatever", Title: "x"})
	if tags != 1 {
		t.Fatalf("tags = %b, want 1", tags)
	}
}

func TestMatchRuleNoMatchLeavesZeroTagsAndNoMonitor(t *testing.T) {
	rules := []Rule{{Class: "Firefox", Tags: 1}}
	tags, floating, monitor := MatchRule(rules, WindowIdentity{Class: "Chrome"})
	if tags != 0 {
		t.Fatalf("tags = %d, want 0", tags)
	}
	if floating {
		t.Fatalf("floating = true, want false")
	}
	if monitor != -1 {
		t.Fatalf("monitor = %d, want -1", monitor)
	}
}

func TestMatchRuleSubstringMatch(t *testing.T) {
	rules := []Rule{{Title: "Mail", Floating: true}}
	tags, floating, _ := MatchRule(rules, WindowIdentity{Title: "Inbox - Mail - Thunderbird"})
	if !floating {
		t.Fatalf("floating = false, want true (title contains the rule's substring)")
	}
	if tags != 0 {
		t.Fatalf("tags = %d, want 0 (rule sets no tags)", tags)
	}

	rules = []Rule{{Title: "Mail", Tags: 4}}
	tags, _, _ = MatchRule(rules, WindowIdentity{Title: "no match here"})
	if tags != 0 {
		t.Fatalf("tags = %d, want 0 for non-matching title", tags)
	}
}
