package app

type Pane int

const (
	PaneHeader Pane = iota
	PaneInput
	PaneRegion
	PaneRank
	PaneMasteries
	PaneMatchList
	PaneMatchDetail
	PaneFooter
)

// focus cycle; a Pane's value is its index here
var paneOrder = [...]Pane{
	PaneHeader,
	PaneInput,
	PaneRegion,
	PaneRank,
	PaneMasteries,
	PaneMatchList,
	PaneMatchDetail,
	PaneFooter,
}

var paneNames = [...]string{
	PaneHeader:      "Header",
	PaneInput:       "Input",
	PaneRegion:      "Region",
	PaneRank:        "Rank",
	PaneMasteries:   "Masteries",
	PaneMatchList:   "Matches",
	PaneMatchDetail: "Match",
	PaneFooter:      "Footer",
}

func Panes() []Pane {
	return paneOrder[:]
}

func (p Pane) Next() Pane {
	return paneOrder[(int(p)+1)%len(paneOrder)]
}

func (p Pane) Prev() Pane {
	return paneOrder[(int(p)+len(paneOrder)-1)%len(paneOrder)]
}

func (p Pane) String() string {
	if p < 0 || int(p) >= len(paneNames) {
		return "Unknown"
	}
	return paneNames[p]
}
