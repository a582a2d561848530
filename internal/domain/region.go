package domain

import "strings"

// Region is the server cluster a summoner lives on.
type Region int

const (
	KR Region = iota
	RU
	BR
	JP
	LA1
	LA2
	NA
	OCE
	PH
	SG
	TH
	TR
	TW
	EUNE
	EUW
)

const DefaultRegion = KR

type regionInfo struct {
	code     string
	platform string
	cluster  string
}

// indexed by Region, in picker order
var regions = [...]regionInfo{
	KR:   {"kr", "kr", "asia"},
	RU:   {"ru", "ru", "europe"},
	BR:   {"br", "br1", "americas"},
	JP:   {"jp", "jp1", "asia"},
	LA1:  {"la1", "la1", "americas"},
	LA2:  {"la2", "la2", "americas"},
	NA:   {"na", "na1", "americas"},
	OCE:  {"oce", "oc1", "sea"},
	PH:   {"ph", "ph2", "sea"},
	SG:   {"sg", "sg2", "sea"},
	TH:   {"th", "th2", "sea"},
	TR:   {"tr", "tr1", "europe"},
	TW:   {"tw", "tw2", "sea"},
	EUNE: {"eune", "eun1", "europe"},
	EUW:  {"euw", "euw1", "europe"},
}

// Regions returns every region in picker order.
func Regions() []Region {
	out := make([]Region, len(regions))
	for i := range regions {
		out[i] = Region(i)
	}
	return out
}

// LookupRegion resolves a short code such as "euw". Matching ignores case
// and surrounding whitespace.
func LookupRegion(code string) (Region, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	for i, r := range regions {
		if r.code == code {
			return Region(i), true
		}
	}
	return DefaultRegion, false
}

// ParseRegion is LookupRegion with unknown codes mapped to DefaultRegion.
func ParseRegion(code string) Region {
	r, _ := LookupRegion(code)
	return r
}

func (r Region) valid() bool {
	return r >= 0 && int(r) < len(regions)
}

func (r Region) info() regionInfo {
	if !r.valid() {
		return regions[DefaultRegion]
	}
	return regions[r]
}

// Code is the short code accepted on the command line.
func (r Region) Code() string { return r.info().code }

// Platform is the platform routing value used for summoner, league and
// mastery lookups.
func (r Region) Platform() string { return r.info().platform }

// Cluster is the regional routing value used for match history.
func (r Region) Cluster() string { return r.info().cluster }

func (r Region) String() string {
	return strings.ToUpper(r.Platform())
}
