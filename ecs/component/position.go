package component

import "math"

// Position is a world-space point. It doubles as a 2D vector.
type Position struct {
	X float64
	Y float64
}

func (p Position) Add(o Position) Position { return Position{X: p.X + o.X, Y: p.Y + o.Y} }
func (p Position) Sub(o Position) Position { return Position{X: p.X - o.X, Y: p.Y - o.Y} }
func (p Position) Mul(o Position) Position { return Position{X: p.X * o.X, Y: p.Y * o.Y} }
func (p Position) Div(o Position) Position { return Position{X: p.X / o.X, Y: p.Y / o.Y} }

func (p Position) AddScalar(v float64) Position { return Position{X: p.X + v, Y: p.Y + v} }
func (p Position) SubScalar(v float64) Position { return Position{X: p.X - v, Y: p.Y - v} }
func (p Position) Scale(v float64) Position     { return Position{X: p.X * v, Y: p.Y * v} }
func (p Position) DivScalar(v float64) Position { return Position{X: p.X / v, Y: p.Y / v} }

func (p Position) Neg() Position { return Position{X: -p.X, Y: -p.Y} }

func (p Position) Floor() Position { return Position{X: math.Floor(p.X), Y: math.Floor(p.Y)} }
func (p Position) Round() Position { return Position{X: math.Round(p.X), Y: math.Round(p.Y)} }

// SnapRound moves p to the nearest grid corner.
func (p Position) SnapRound(grid float64) Position {
	return p.DivScalar(grid).Round().Scale(grid)
}

// SnapFloor moves p to the top-left corner of the grid cell containing it.
func (p Position) SnapFloor(grid float64) Position {
	return p.DivScalar(grid).Floor().Scale(grid)
}

var PositionComponent = NewComponent[Position]()
