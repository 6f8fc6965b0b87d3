package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/persist"
	"go.uber.org/zap"
)

type summary struct {
	Records   int
	BySprite  map[string]int
	MinMarker uint64
	MaxMarker uint64
	Next      uint64
}

func inspect(path string) (*summary, error) {
	w := ecs.NewWorld()
	alloc := persist.NewMarkerAllocator()
	tuning := common.DefaultTuning()

	n, err := persist.LoadFile(w, alloc, &tuning, path)
	if err != nil {
		return nil, err
	}
	w.Maintain()

	s := &summary{Records: n, BySprite: make(map[string]int), Next: alloc.Peek().ID}
	ecs.ForEach(w, component.MarkerComponent.Kind(), func(e ecs.Entity, m *component.Marker) {
		if s.MinMarker == 0 || m.ID < s.MinMarker {
			s.MinMarker = m.ID
		}
		if m.ID > s.MaxMarker {
			s.MaxMarker = m.ID
		}
		name := "(none)"
		if sp, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			name = sp.Name
		}
		s.BySprite[name]++
	})
	return s, nil
}

func (s *summary) write(out io.Writer) {
	fmt.Fprintf(out, "records: %d\n", s.Records)
	if s.Records > 0 {
		fmt.Fprintf(out, "markers: %d..%d\n", s.MinMarker, s.MaxMarker)
	}
	fmt.Fprintf(out, "next marker: %d\n", s.Next)

	names := make([]string, 0, len(s.BySprite))
	for name := range s.BySprite {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %-14s %d\n", name, s.BySprite[name])
	}
}

func main() {
	levelPath := flag.String("level", "storage.yaml", "level file to inspect")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	s, err := inspect(*levelPath)
	if err != nil {
		if errors.Is(err, persist.ErrMalformedLevel) {
			logger.Error("malformed level", zap.String("path", *levelPath), zap.Error(err))
			os.Exit(2)
		}
		logger.Fatal("cannot read level", zap.String("path", *levelPath), zap.Error(err))
	}
	s.write(os.Stdout)
}
