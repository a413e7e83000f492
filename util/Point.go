package util

import (
	"errors"
	"fmt"
)

// ErrOverflow is returned by the checked operations when a result does not fit in int32.
var ErrOverflow = errors.New("int32 overflow")

type Point struct {
	X int32
	Y int32
}

func NewPoint(x int32, y int32) *Point {
	return &Point{
		X: x,
		Y: y,
	}
}

// Translate moves the point in place. Coordinates wrap on overflow.
func (p *Point) Translate(dx int32, dy int32) {
	p.X += dx
	p.Y += dy
}

// TranslateChecked is Translate but leaves p untouched and returns ErrOverflow
// if either coordinate would leave the int32 range.
func (p *Point) TranslateChecked(dx int32, dy int32) error {
	x, okX := CheckedAdd(p.X, dx)
	y, okY := CheckedAdd(p.Y, dy)
	if !okX || !okY {
		return fmt.Errorf("translate %v by (%d, %d): %w", *p, dx, dy, ErrOverflow)
	}
	p.X = x
	p.Y = y
	return nil
}

func (p Point) Equals(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p Point) String() string {
	return fmt.Sprintf("Point{x: %d, y: %d}", p.X, p.Y)
}

// DistanceSquared returns the squared euclidean distance between a and b,
// with wrapping int32 arithmetic.
func DistanceSquared(a *Point, b *Point) int32 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return Square(dx) + Square(dy)
}

func DistanceSquaredChecked(a *Point, b *Point) (int32, error) {
	dx, okX := CheckedSub(a.X, b.X)
	dy, okY := CheckedSub(a.Y, b.Y)
	if !okX || !okY {
		return 0, fmt.Errorf("distance between %v and %v: %w", *a, *b, ErrOverflow)
	}
	dx2, okX := CheckedMul(dx, dx)
	dy2, okY := CheckedMul(dy, dy)
	if !okX || !okY {
		return 0, fmt.Errorf("distance between %v and %v: %w", *a, *b, ErrOverflow)
	}
	sum, ok := CheckedAdd(dx2, dy2)
	if !ok {
		return 0, fmt.Errorf("distance between %v and %v: %w", *a, *b, ErrOverflow)
	}
	return sum, nil
}
