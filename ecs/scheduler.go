package ecs

import (
	"fmt"
	"strings"
)

// System updates a world once per frame.
type System interface {
	Update(w *World)
}

// Scheduler runs systems in the fixed order they were added. Each system
// runs to completion before the next starts.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World) {
	if s == nil || w == nil {
		return
	}
	for _, system := range s.systems {
		system.Update(w)
	}
}

func (s *Scheduler) Len() int {
	if s == nil {
		return 0
	}
	return len(s.systems)
}

// Names lists the systems in run order by their type name, without the
// package qualifier.
func (s *Scheduler) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.systems))
	for _, system := range s.systems {
		name := strings.TrimPrefix(fmt.Sprintf("%T", system), "*")
		if i := strings.LastIndex(name, "."); i >= 0 {
			name = name[i+1:]
		}
		names = append(names, name)
	}
	return names
}
