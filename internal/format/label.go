package format

import (
	"lol-watcher/internal/domain"
	"strings"
)

const (
	LabelWon  = "won"
	LabelLose = "lose"
	LabelNone = "-"
)

// FindParticipant locates the tracked summoner in a match. Names are
// compared with surrounding whitespace removed and case folded.
func FindParticipant(m domain.Match, name string) (domain.Participant, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Participant{}, false
	}
	for _, p := range m.Participants() {
		if strings.EqualFold(strings.TrimSpace(p.SummonerName), name) {
			return p, true
		}
	}
	return domain.Participant{}, false
}

func MatchLabel(m domain.Match, trackedName string) Fragment {
	p, ok := FindParticipant(m, trackedName)
	switch {
	case !ok:
		return frag(LabelNone, Style{Color: ColorMuted})
	case p.Win:
		return frag(LabelWon, Style{Color: ColorWin, Bold: true})
	default:
		return frag(LabelLose, Style{Color: ColorLoss, Bold: true})
	}
}

// MatchTitle is the one-line summary used by the match list.
func MatchTitle(m domain.Match, trackedName string) Line {
	label := MatchLabel(m, trackedName)
	label.Text = pad(label.Text, 5)
	line := Line{label, frag(m.GameMode, Style{Color: ColorMuted})}
	if p, ok := FindParticipant(m, trackedName); ok {
		line = append(line, plain(" "), frag(p.ChampionName, Style{Color: ColorValue}))
	}
	return line
}
