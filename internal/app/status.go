package app

import (
	"fmt"
	"lol-watcher/internal/domain"
	"time"
)

type StatusKind int

const (
	StatusIdle StatusKind = iota
	StatusSearching
	StatusFailed
)

type Status struct {
	Kind   StatusKind
	Name   string
	Region domain.Region
}

func (s Status) String() string {
	switch s.Kind {
	case StatusSearching:
		return fmt.Sprintf("searching %s [%s]", s.Name, s.Region)
	case StatusFailed:
		return fmt.Sprintf("failed %s [%s]", s.Name, s.Region)
	}
	return "idle"
}

type LogKind int

const (
	LogInfo LogKind = iota
	LogWarning
	LogError
)

func (k LogKind) String() string {
	switch k {
	case LogWarning:
		return "warn"
	case LogError:
		return "error"
	}
	return "info"
}

type LogEntry struct {
	Kind    LogKind
	Time    time.Time
	Message string
}
