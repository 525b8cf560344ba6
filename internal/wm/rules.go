package wm

import "strings"

// Rule is one entry of the configured window-rule table (spec.md §6
// "Rules"): a substring match against WM_CLASS instance/class and
// WM_NAME, applied at manage time to assign initial tags/floating/monitor.
type Rule struct {
	Class    string // WM_CLASS class component, "" matches any
	Instance string // WM_CLASS instance component, "" matches any
	Title    string // substring of WM_NAME, "" matches any
	Tags     uint   // 0 means "inherit the monitor's current view"
	Floating bool
	Monitor  int // -1 means "the monitor the client mapped on"
}

// WindowIdentity is what the backend reports for a freshly mapped window,
// the fields rules.go matches against.
type WindowIdentity struct {
	Class    string
	Instance string
	Title    string
}

// MatchRule implements spec.md §4.I rule application: scan rules in
// configured order, union the Tags bit of every rule whose class/instance/
// title predicates all match (empty predicate matches anything), and take
// floating/monitor from the first matching rule that sets them.
func MatchRule(rules []Rule, id WindowIdentity) (tags uint, floating bool, monitor int) {
	monitor = -1
	floatingSet := false
	monitorSet := false

	for _, r := range rules {
		if r.Class != "" && !strings.Contains(id.Class, r.Class) {
			continue
		}
		if r.Instance != "" && !strings.Contains(id.Instance, r.Instance) {
			continue
		}
		if r.Title != "" && !strings.Contains(id.Title, r.Title) {
			continue
		}

		tags |= r.Tags
		if !floatingSet && r.Floating {
			floating = true
			floatingSet = true
		}
		if !monitorSet && r.Monitor >= 0 {
			monitor = r.Monitor
			monitorSet = true
		}
	}
	return tags, floating, monitor
}
