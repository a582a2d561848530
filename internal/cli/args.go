// Package cli implements the one-shot mode: classify command-line tokens,
// fetch what they ask for and print it.
package cli

import (
	"fmt"
	"lol-watcher/internal/domain"
	"strconv"
	"strings"
)

type Action int

const (
	ActionSummoner Action = iota
	ActionRank
	ActionMastery
	ActionGame
)

func (a Action) String() string {
	switch a {
	case ActionRank:
		return "rank"
	case ActionMastery:
		return "mastery"
	case ActionGame:
		return "game"
	}
	return "summoner"
}

type Step struct {
	Action Action
	Index  int // game index, ActionGame only
}

type Invocation struct {
	Names  []string
	Region domain.Region
	Steps  []Step
	Help   bool
}

var flags = map[string]Action{
	"-s": ActionSummoner, "--sum": ActionSummoner, "--summoner": ActionSummoner,
	"-r": ActionRank, "--rank": ActionRank,
	"-m": ActionMastery, "-mastery": ActionMastery, "--mastery": ActionMastery,
	"-g": ActionGame, "-game": ActionGame, "--game": ActionGame,
}

// Parse classifies each token as a flag, a region code, an integer or a
// summoner name, in that order of precedence.
func Parse(args []string) (Invocation, error) {
	inv := Invocation{Region: domain.DefaultRegion}

	for i := 0; i < len(args); i++ {
		tok := args[i]

		if tok == "-h" || tok == "--help" {
			inv.Help = true
			continue
		}
		if action, ok := flags[tok]; ok {
			step := Step{Action: action}
			// a negative index counts as unparseable and stays in args
			if action == ActionGame && i+1 < len(args) {
				if n, err := strconv.Atoi(args[i+1]); err == nil && n >= 0 {
					step.Index = n
					i++
				}
			}
			inv.Steps = append(inv.Steps, step)
			continue
		}
		if strings.HasPrefix(tok, "-") && !isInt(tok) {
			return inv, fmt.Errorf("unknown flag %q", tok)
		}
		if r, ok := domain.LookupRegion(tok); ok {
			inv.Region = r
			continue
		}
		if isInt(tok) {
			continue
		}
		if name := strings.TrimSpace(tok); name != "" {
			inv.Names = append(inv.Names, name)
		}
	}
	return inv, nil
}

func isInt(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

func Usage(program string) string {
	var codes []string
	for _, r := range domain.Regions() {
		codes = append(codes, r.Code())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s [name...] [region] [flags]\n\n", program)
	b.WriteString("Without arguments the interactive view starts.\n\n")
	b.WriteString("Flags:\n")
	b.WriteString("  -h, --help          print this help\n")
	b.WriteString("  -s, --sum           print the summoner profile (default)\n")
	b.WriteString("  -r, --rank          print ranked standings\n")
	b.WriteString("  -m, -mastery        print the 10 highest champion masteries\n")
	b.WriteString("  -g, -game <index>   print one game from the recent match history (default 0)\n\n")
	fmt.Fprintf(&b, "Regions: %s (default %s)\n", strings.Join(codes, " "), domain.DefaultRegion.Code())
	b.WriteString("\nEnvironment:\n")
	b.WriteString("  RGAPI_KEY           Riot API key (required)\n")
	b.WriteString("  WATCHER_NAME        summoner for the interactive quick search\n")
	b.WriteString("  WATCHER_REGION      region for the interactive quick search\n")
	return b.String()
}
