package ecs

import (
	"testing"

	"github.com/milk9111/platformer/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != 0 {
				t.Fatalf("expected reserved entities to stay hidden, got %d", len(Entities(w)))
			}

			w.Maintain()
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}

			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if !IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should stay alive until Maintain")
				}
				w.Maintain()
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after Maintain")
				}
				if len(Entities(w)) != c.create-1 {
					t.Fatalf("expected %d entities, got %d", c.create-1, len(Entities(w)))
				}
			}
		})
	}
}

func TestWorldRecyclesIndexWithNewGeneration(t *testing.T) {
	w := NewWorld()
	old := w.CreateEntity()
	w.Maintain()
	require.True(t, w.DestroyEntity(old))
	w.Maintain()

	fresh := w.CreateEntity()
	w.Maintain()

	assert.Equal(t, old.id(), fresh.id())
	assert.NotEqual(t, old, fresh)
	assert.False(t, w.IsAlive(old))
	assert.True(t, w.IsAlive(fresh))
	assert.False(t, w.DestroyEntity(old), "stale handle must not destroy the new occupant")
}

func TestDeferredCreateAcceptsComponents(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()

	e := w.CreateEntity()
	require.NoError(t, Add(w, e, k, intPtr(7)))
	assert.True(t, Has(w, e, k))
	assert.Equal(t, 0, Count(w, k), "join must not see reserved entity")

	created, destroyed := w.Maintain()
	assert.Equal(t, 1, created)
	assert.Equal(t, 0, destroyed)
	assert.Equal(t, 1, Count(w, k))
}

func TestDeferredDestroyDropsComponents(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()
	e := w.CreateEntity()
	require.NoError(t, Add(w, e, k, intPtr(1)))
	w.Maintain()

	require.True(t, w.DestroyEntity(e))
	_, destroys := w.Pending()
	assert.Equal(t, 1, destroys)
	assert.Equal(t, 1, Count(w, k))

	w.Maintain()
	assert.Equal(t, 0, Count(w, k))

	// The recycled slot must start without the old component.
	next := w.CreateEntity()
	w.Maintain()
	assert.False(t, Has(w, next, k))
}

func TestDestroyTwiceInOneFrame(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.Maintain()

	assert.True(t, w.DestroyEntity(e))
	assert.True(t, w.DestroyEntity(e))
	_, destroyed := w.Maintain()
	assert.Equal(t, 1, destroyed)
}

func TestCreateAndDestroySameFrame(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	assert.True(t, w.Exists(e))
	assert.False(t, w.IsAlive(e))
	require.True(t, w.DestroyEntity(e))

	created, destroyed := w.Maintain()
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, destroyed)
	assert.Empty(t, w.Entities())
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()
	e := w.CreateEntity()
	w.Maintain()

	assert.ErrorIs(t, Add(w, e, component.ComponentKind[int]{}, intPtr(1)), component.ErrInvalidComponentKind)
	assert.ErrorIs(t, Add[int](w, e, k, nil), component.ErrNilComponent)

	w.DestroyEntity(e)
	w.Maintain()
	assert.ErrorIs(t, Add(w, e, k, intPtr(1)), component.ErrEntityNotAlive)
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func float64Ptr(f float64) *float64 {
	return &f
}

func TestWorldComponentsAndQueries(t *testing.T) {
	t.Run("component_table", func(t *testing.T) {
		w := NewWorld()

		h1 := component.NewComponent[int]()
		h2 := component.NewComponent[string]()
		h3 := component.NewComponent[float64]()

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)
		w.Maintain()

		tests := []struct {
			name     string
			setup    func() error
			check    func(t *testing.T)
			teardown func() bool
		}{
			{
				name:  "add_int_to_e1",
				setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
				check: func(t *testing.T) {
					v, ok := Get[int](w, e1, h1.Kind())
					if !ok || *v != 10 {
						t.Fatalf("expected 10, got %v ok=%v", v, ok)
					}
				},
				teardown: func() bool { return Remove[int](w, e1, h1.Kind()) },
			},
			{
				name: "add_str_to_e1_and_e2",
				setup: func() error {
					if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
						return err
					}
					return Add(w, e2, h2.Kind(), stringPtr("b"))
				},
				check: func(t *testing.T) {
					if !Has[string](w, e1, h2.Kind()) || !Has[string](w, e2, h2.Kind()) {
						t.Fatalf("expected both entities to have string component")
					}
				},
				teardown: func() bool { return Remove[string](w, e1, h2.Kind()) },
			},
			{
				name:  "add_float_and_remove",
				setup: func() error { return Add(w, e1, h3.Kind(), float64Ptr(1.23)) },
				check: func(t *testing.T) {
					if _, ok := Get[float64](w, e1, h3.Kind()); !ok {
						t.Fatalf("expected float present")
					}
				},
				teardown: func() bool { return Remove[float64](w, e1, h3.Kind()) },
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				if err := tc.setup(); err != nil {
					t.Fatalf("setup failed: %v", err)
				}
				tc.check(t)
				if !tc.teardown() {
					t.Fatalf("teardown failed for %s", tc.name)
				}
			})
		}
	})
}

func TestForEach(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)
		e3 := CreateEntity(w)
		w.Maintain()

		if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		var ents []Entity
		ForEach(w, h.Kind(), func(e Entity, _ *int) { ents = append(ents, e) })
		set := toSet(ents)

		if _, ok := set[e1]; !ok {
			t.Fatalf("expected e1 in ForEach result")
		}
		if _, ok := set[e3]; !ok {
			t.Fatalf("expected e3 in ForEach result")
		}
		if _, ok := set[e2]; ok {
			t.Fatalf("did not expect e2 in ForEach result")
		}
	})

	t.Run("removal_during_iteration", func(t *testing.T) {
		w := NewWorld()
		k := component.NewComponentKind[int]()
		for i := 0; i < 4; i++ {
			e := CreateEntity(w)
			require.NoError(t, Add(w, e, k, intPtr(i)))
		}
		w.Maintain()

		visited := 0
		ForEach(w, k, func(e Entity, _ *int) {
			visited++
			Remove(w, e, k)
		})
		assert.Equal(t, 4, visited)
		assert.Equal(t, 0, Count(w, k))
	})
}

func TestForEach3(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)
				e4 := CreateEntity(w)
				w.Maintain()

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				require.NoError(t, Add(w, e1, ka, intPtr(1)))
				require.NoError(t, Add(w, e2, ka, intPtr(2)))
				require.NoError(t, Add(w, e2, kb, intPtr(3)))
				require.NoError(t, Add(w, e2, kc, intPtr(5)))
				require.NoError(t, Add(w, e3, kb, intPtr(4)))
				require.NoError(t, Add(w, e4, kc, intPtr(6)))

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 1 || res[0].id() != e2.id() {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_destroyed_entities_after_maintain",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)
				w.Maintain()

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				require.NoError(t, Add(w, e, ka, intPtr(1)))
				require.NoError(t, Add(w, e, kb, intPtr(2)))
				require.NoError(t, Add(w, e, kc, intPtr(3)))

				if !DestroyEntity(w, e) {
					t.Fatal("failed to destroy entity")
				}
				w.Maintain()

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "missing_store_returns_nil",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)
				w.Maintain()

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				require.NoError(t, Add(w, e, ka, intPtr(1)))

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestWithout(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	w.Maintain()
	require.NoError(t, Add(w, e1, ka, intPtr(1)))
	require.NoError(t, Add(w, e2, ka, intPtr(2)))
	require.NoError(t, Add(w, e2, kb, stringPtr("x")))

	got := Without(w, Query(w, ka), kb)
	assert.Equal(t, []Entity{e1}, got)

	kc := component.NewComponentKind[float64]()
	assert.Len(t, Without(w, Query(w, ka), kc), 2)
}

func TestEventQueueDrain(t *testing.T) {
	w := NewWorld()
	w.Events().Push(Event{Kind: EventPlaced})
	w.Events().Push(Event{Kind: EventReplaced})
	assert.Equal(t, 2, w.Events().Len())

	evts := w.Events().Drain()
	require.Len(t, evts, 2)
	assert.Equal(t, EventPlaced, evts[0].Kind)
	assert.Nil(t, w.Events().Drain())
}

type countingSystem struct {
	order *[]int
	id    int
}

func (s countingSystem) Update(*World) { *s.order = append(*s.order, s.id) }

func TestSchedulerRunsInDeclaredOrder(t *testing.T) {
	var order []int
	s := NewScheduler(countingSystem{&order, 1}, countingSystem{&order, 2})
	s.Add(countingSystem{&order, 3})
	s.Update(NewWorld())
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestSchedulerNames(t *testing.T) {
	var order []int
	s := NewScheduler(countingSystem{&order, 1}, nil, &countingSystem{&order, 2})
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"countingSystem", "countingSystem"}, s.Names())
}
