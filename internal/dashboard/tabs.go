// Package dashboard assembles the payload of each dashboard tab from the static tables.
package dashboard

import (
	"errors"
	"fmt"
	"strings"

	"crimedash/internal/view"
)

// ErrUnknownTab is returned for a tab name outside the six dashboard tabs.
var ErrUnknownTab = errors.New("unknown tab")

// Tab names one dashboard tab.
type Tab string

const (
	TabOverview    Tab = "overview"
	TabGeographic  Tab = "geographic"
	TabDemographic Tab = "demographic"
	TabTrends      Tab = "trends"
	TabInsights    Tab = "insights"
	TabActions     Tab = "actions"
)

var tabs = []Tab{TabOverview, TabGeographic, TabDemographic, TabTrends, TabInsights, TabActions}

// Tabs returns the tabs in display order.
func Tabs() []Tab {
	out := make([]Tab, len(tabs))
	copy(out, tabs)
	return out
}

// ParseTab resolves a tab name case-insensitively.
func ParseTab(name string) (Tab, error) {
	t := Tab(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range tabs {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, name)
}

// Build returns the payload of tab. Only the overview depends on the selection.
func Build(tab Tab, sel view.Selection) (any, error) {
	switch tab {
	case TabOverview:
		return BuildOverview(sel)
	case TabGeographic:
		return BuildGeographic(), nil
	case TabDemographic:
		return BuildDemographic(), nil
	case TabTrends:
		return BuildTrends(), nil
	case TabInsights:
		return BuildInsights(), nil
	case TabActions:
		return BuildActions(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTab, tab)
	}
}
