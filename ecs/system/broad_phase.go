package system

import (
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

type obstacle struct {
	entity ecs.Entity
	rect   component.Rect
	order  int
	shape  *cp.Shape
}

// broadPhase indexes every live hitbox in a Chipmunk bounding-box tree for
// one collision pass. Queries are inclusive, so touching boxes come back and
// the strict Rect.Overlaps test decides.
type broadPhase struct {
	tree      *cp.BBTree
	obstacles map[ecs.Entity]*obstacle
}

func obstacleBB(s *cp.Shape) cp.BB {
	return s.UserData.(*obstacle).rect.BB()
}

func newBroadPhase(w *ecs.World) *broadPhase {
	bp := &broadPhase{
		tree:      cp.NewBBTree(obstacleBB, nil).GetTree(),
		obstacles: make(map[ecs.Entity]*obstacle),
	}
	order := 0
	ecs.ForEach(w, component.HitboxComponent.Kind(), func(e ecs.Entity, h *component.Hitbox) {
		o := &obstacle{entity: e, rect: h.Rect, order: order}
		o.shape = &cp.Shape{UserData: o}
		order++
		bp.obstacles[e] = o
		bp.tree.Insert(o.shape, cp.HashValue(e))
	})
	return bp
}

// query returns the obstacles whose bounds touch bb, excluding self, in
// hitbox storage order.
func (bp *broadPhase) query(self ecs.Entity, bb cp.BB) []*obstacle {
	var out []*obstacle
	bp.tree.Query(nil, bb, func(_ interface{}, s *cp.Shape, id uint32, _ interface{}) uint32 {
		if o := s.UserData.(*obstacle); o.entity != self {
			out = append(out, o)
		}
		return id
	}, nil)
	sort.Slice(out, func(i, j int) bool { return out[i].order < out[j].order })
	return out
}

// move re-indexes e after its hitbox changed.
func (bp *broadPhase) move(e ecs.Entity, rect component.Rect) {
	o, ok := bp.obstacles[e]
	if !ok || o.rect == rect {
		return
	}
	bp.tree.Remove(o.shape, cp.HashValue(e))
	o.rect = rect
	bp.tree.Insert(o.shape, cp.HashValue(e))
}

func (bp *broadPhase) len() int {
	return bp.tree.Count()
}
