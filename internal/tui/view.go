package tui

import (
	"fmt"
	"lol-watcher/internal/app"
	"lol-watcher/internal/constants"
	"lol-watcher/internal/format"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	headerHeight = 4
	footerHeight = 4
	minWidth     = 60
	minHeight    = 16
)

// ─── Layout ─────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}
	if m.width < minWidth || m.height < minHeight {
		return fmt.Sprintf("terminal too small (%dx%d), need %dx%d", m.width, m.height, minWidth, minHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		m.viewBody(),
		m.viewFooter(),
	)
}

// layout holds pane widths and the body height for the current window.
type layout struct {
	summonerW, inputW, regionW int
	leftW, listW, detailW      int
	bodyH, rankH               int
}

func (m Model) layout() layout {
	var l layout
	l.summonerW = m.width * 35 / 100
	l.inputW = m.width * 35 / 100
	l.regionW = m.width - l.summonerW - l.inputW

	l.bodyH = m.height - headerHeight - footerHeight
	l.rankH = l.bodyH / 2
	l.leftW = max(m.width*20/100, 24)
	rightW := m.width - l.leftW
	l.listW = max(rightW*20/100, 20)
	l.detailW = rightW - l.listW
	return l
}

func (m Model) viewHeader() string {
	l := m.layout()
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.box(app.PaneHeader, "Summoner", m.summonerLines(), l.summonerW, headerHeight),
		m.box(app.PaneInput, "Search (i)", []string{m.input.View()}, l.inputW, headerHeight),
		m.box(app.PaneRegion, "Region (r)", m.regionLines(), l.regionW, headerHeight),
	)
}

func (m Model) viewBody() string {
	l := m.layout()
	left := lipgloss.JoinVertical(lipgloss.Left,
		m.box(app.PaneRank, "Rank", m.rankLines(), l.leftW, l.rankH),
		m.box(app.PaneMasteries, "Masteries", m.masteryLines(), l.leftW, l.bodyH-l.rankH),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		left,
		m.box(app.PaneMatchList, "Matches (l)", m.matchListLines(l.bodyH-3), l.listW, l.bodyH),
		m.box(app.PaneMatchDetail, "Match (d)", strings.Split(m.detail.View(), "\n"), l.detailW, l.bodyH),
	)
}

func (m Model) viewFooter() string {
	lines := []string{
		m.help.View(m.mapper.Keys.helpFor(m.state.Focus())),
		m.statusLine(),
	}
	return m.box(app.PaneFooter, "", lines, m.width, footerHeight)
}

// box draws one bordered pane, clipping content to the pane size.
func (m Model) box(p app.Pane, title string, lines []string, w, h int) string {
	border, titleStyle := styleBorderNormal, styleTitle
	if m.state.Focus() == p {
		border, titleStyle = styleBorderFocused, styleTitleFocused
	}

	innerW, innerH := max(w-2, 1), max(h-2, 1)
	clip := lipgloss.NewStyle().MaxWidth(innerW)

	var content []string
	if title != "" {
		content = append(content, titleStyle.Render(title))
	}
	for _, l := range lines {
		if len(content) == innerH {
			break
		}
		content = append(content, clip.Render(l))
	}

	return border.
		Width(innerW).
		Height(innerH).
		MaxHeight(h).
		Render(strings.Join(content, "\n"))
}

// ─── Panes ──────────────────────────────────────────────────────────────────

func (m Model) summonerLines() []string {
	s := m.state.Result().Summoner
	if s == nil {
		return []string{styleMuted.Render("no summoner")}
	}
	return renderText(format.SummonerView{Summoner: *s}.Format())
}

func (m Model) regionLines() []string {
	regions := m.state.Regions()
	current := m.state.Region()

	idx := 0
	for i, r := range regions {
		if r == current {
			idx = i
		}
	}

	// a window of neighbours around the selection, wrapping at the ends
	var parts []string
	for d := -2; d <= 2; d++ {
		r := regions[((idx+d)%len(regions)+len(regions))%len(regions)]
		label := " " + r.Code() + " "
		if d == 0 {
			parts = append(parts, styleSelected.Render(label))
		} else {
			parts = append(parts, styleMuted.Render(label))
		}
	}
	return []string{strings.Join(parts, " ")}
}

func (m Model) rankLines() []string {
	ranks := m.state.Result().Ranks
	if len(ranks) == 0 {
		return renderText(format.NoData())
	}
	views := make([]format.Formatter, len(ranks))
	for i, r := range ranks {
		views[i] = format.RankView{RankEntry: r}
	}
	return renderText(format.Join(views...))
}

func (m Model) masteryLines() []string {
	masteries := m.state.Result().Masteries
	if len(masteries) == 0 {
		return renderText(format.NoData())
	}
	var lines []string
	for _, ms := range masteries {
		lines = append(lines, renderText(format.MasteryView{Mastery: ms}.Format())...)
	}
	return lines
}

func (m Model) matchListLines(rows int) []string {
	matches := m.state.Result().Matches
	if len(matches) == 0 {
		return renderText(format.NoData())
	}

	cursor := m.state.Cursor()
	offset := 0
	if rows > 0 && cursor >= rows {
		offset = cursor - rows + 1
	}

	tracked := m.state.TrackedName()
	var lines []string
	for i := offset; i < len(matches); i++ {
		prefix := "  "
		if i == cursor {
			prefix = styleCursor.Render("▸ ")
		}
		lines = append(lines, prefix+format.MatchTitle(matches[i], tracked).Render())
	}
	return lines
}

func (m Model) matchDetailLines() []string {
	match, ok := m.state.SelectedMatch()
	if !ok {
		return renderText(format.NoData())
	}
	return renderText(format.MatchView{Match: match}.Format())
}

func (m Model) statusLine() string {
	status := m.state.Status()

	var line string
	switch status.Kind {
	case app.StatusSearching:
		line = m.spinner.View() + " " + styleSearching.Render(status.String())
	case app.StatusFailed:
		line = styleFailed.Render(status.String())
	default:
		line = styleMuted.Render(status.String())
	}

	entry, ok := m.state.Log()
	if !ok || m.now.Sub(entry.Time) > constants.LogVisibleFor {
		return line
	}
	return line + styleMuted.Render(" │ "+entry.Time.Format("15:04:05")+" ") +
		logKindStyles[entry.Kind].Render(entry.Kind.String()) + " " + entry.Message
}

func renderText(t format.Text) []string {
	lines := make([]string, len(t))
	for i, l := range t {
		lines[i] = l.Render()
	}
	return lines
}
