package format

import (
	"fmt"
	"lol-watcher/internal/domain"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	Unranked        = "UNRANKED"
	DefaultDivision = "I"
)

var numbers = message.NewPrinter(language.English)

type SummonerView struct{ domain.Summoner }

func (v SummonerView) Format() Text {
	return Text{
		{
			frag(v.Name, Style{Bold: true}),
			plain("  "),
			frag(fmt.Sprintf("lvl %d", v.Level), Style{Color: ColorValue}),
			plain("  "),
			frag(v.Region.String(), Style{Color: ColorAccent}),
		},
	}
}

type RankView struct{ domain.RankEntry }

func (v RankView) Format() Text {
	header := Line{frag(QueueLabel(v.QueueType), Style{Bold: true, Underline: true})}

	tier := strings.ToUpper(v.Tier)
	var standing Line
	if tier == "" {
		standing = Line{frag(Unranked, Style{Color: ColorMuted, Bold: true})}
	} else {
		division := v.Division
		if division == "" {
			division = DefaultDivision
		}
		standing = Line{
			frag(tier, Style{Color: TierColor(tier), Bold: true}),
			plain(" " + division + "  "),
			frag(fmt.Sprintf("%d LP", v.LeaguePoints), Style{Color: ColorValue}),
		}
	}

	rate := frag("N/A", Style{Color: ColorMuted})
	if pct, ok := WinRate(v.Wins, v.Losses); ok {
		rate = frag(fmt.Sprintf("%d%%", pct), Style{Color: ColorAccent, Bold: true})
	}
	streak := "❄"
	if v.HotStreak {
		streak = "🔥"
	}
	record := Line{
		frag(fmt.Sprintf("%dW", v.Wins), Style{Color: ColorWin}),
		plain(" "),
		frag(fmt.Sprintf("%dL", v.Losses), Style{Color: ColorLoss}),
		plain("  "),
		rate,
		plain("  " + streak),
	}

	return Text{header, standing, record}
}

// WinRate returns floor(wins*100/(wins+losses)); ok is false when no games
// were played.
func WinRate(wins, losses int) (pct int, ok bool) {
	total := wins + losses
	if total <= 0 {
		return 0, false
	}
	return wins * 100 / total, true
}

func QueueLabel(queue string) string {
	switch queue {
	case "RANKED_SOLO_5x5":
		return "Solo/Duo"
	case "RANKED_FLEX_SR":
		return "Flex"
	case "":
		return "Ranked"
	}
	return queue
}

type MasteryView struct{ domain.Mastery }

func (v MasteryView) Format() Text {
	return Text{{
		frag(pad(v.ChampionName, 14), Style{Color: ColorWin}),
		frag(padLeft(numbers.Sprintf("%d", v.Points), 10), Style{Color: ColorValue}),
		plain(" "),
		frag(fmt.Sprintf("(%d)", v.Level), Style{Color: ColorAccent, Bold: true}),
	}}
}

type MatchView struct{ domain.Match }

func (v MatchView) Format() Text {
	out := Text{{
		frag(v.GameMode, Style{Bold: true, Underline: true}),
		plain("  "),
		frag(Duration(v.Duration), Style{Color: ColorMuted}),
	}}

	for _, t := range v.Teams {
		out = append(out, Line{}, teamHeader(t))
		if len(t.Bans) > 0 {
			out = append(out, Line{frag("bans: "+strings.Join(t.Bans, ", "), Style{Color: ColorMuted})})
		}
		for _, p := range t.Participants {
			out = append(out, participantRow(p))
		}
	}
	return out
}

func teamHeader(t domain.Team) Line {
	name, color := "Blue Team", ColorBlue
	if t.ID == 200 {
		name, color = "Red Team", ColorRed
	}
	result := frag("Defeat", Style{Color: ColorLoss})
	if t.Win {
		result = frag("Victory", Style{Color: ColorWin})
	}
	return Line{frag(name, Style{Color: color, Bold: true}), plain("  "), result}
}

func participantRow(p domain.Participant) Line {
	kda := fmt.Sprintf("%d/%d/%d", p.Kills, p.Deaths, p.Assists)
	return Line{
		frag(pad(positionLabel(p.Position), 8), Style{Color: ColorAccent}),
		plain(pad(p.SummonerName, 18)),
		frag(pad(p.ChampionName, 14), Style{Color: ColorValue}),
		frag(pad(kda, 10), Style{Color: ColorWin}),
		frag(pad(fmt.Sprintf("%.1f", KDARatio(p.Kills, p.Deaths, p.Assists)), 6), Style{Color: ColorMuted}),
		frag(fmt.Sprintf("%d cs", p.Minions), Style{Color: ColorAccent}),
	}
}

// KDARatio is (kills+assists)/deaths, with a deathless game counting as
// one death.
func KDARatio(kills, deaths, assists int) float64 {
	if deaths == 0 {
		deaths = 1
	}
	return float64(kills+assists) / float64(deaths)
}

func positionLabel(pos string) string {
	switch pos {
	case "MIDDLE":
		return "MID"
	case "BOTTOM":
		return "ADC"
	case "UTILITY":
		return "SUP"
	case "JUNGLE":
		return "JGL"
	case "":
		return "-"
	}
	return pos
}

// Duration renders a game length as m:ss.
func Duration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func pad(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width-1, "…"), width)
}

func padLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}
