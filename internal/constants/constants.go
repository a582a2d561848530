package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	SearchTimeout      = 60 * time.Second
)

const (
	StartTimeout    = 5 * time.Second
	ShutdownTimeout = 5 * time.Second
)

const (
	HTTPMaxConnsPerHost     = 20
	HTTPReadTimeout         = 10 * time.Second
	HTTPWriteTimeout        = 10 * time.Second
	HTTPMaxIdleConnDuration = 1 * time.Minute
)

const (
	// redraw cadence of the interactive view
	TickRate = 250 * time.Millisecond

	LogVisibleFor = 8 * time.Second

	NameCharLimit = 64
)

const (
	MasteryLimit      = 10
	DefaultMatchCount = 20
	MaxMatchCount     = 100
	LogHistoryLimit   = 50
)

const (
	TeamBlueID = 100
	TeamRedID  = 200
)
