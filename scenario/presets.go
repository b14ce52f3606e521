package scenario

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/obstacle"
)

func init() {
	Register(Empty())
	Register(Circles())
	Register(Walls())
	Register(Maze())
}

func cell(x, y int) grid.Cell { return grid.Cell{X: x, Y: y} }

// Empty is a 10×10 map without obstacles searched with 4-directional moves.
func Empty() Scenario {
	return Scenario{
		Name:   "empty",
		Title:  "Empty 10×10 map, 4-directional",
		Width:  10,
		Height: 10,
		Conn:   grid.Conn4,
		Start:  cell(1, 1),
		Goal:   cell(10, 6),
	}
}

// Circles is a 10×10 map with three round obstacles.
func Circles() Scenario {
	return Scenario{
		Name:   "circles",
		Title:  "10×10 map with three circular obstacles",
		Width:  10,
		Height: 10,
		Conn:   grid.Conn8,
		Start:  cell(10, 1),
		Goal:   cell(2, 1),
		Shapes: []obstacle.Shape{
			obstacle.Circle{Center: cell(3, 7), Radius: 1},
			obstacle.Circle{Center: cell(5, 3), Radius: 2},
			obstacle.Circle{Center: cell(9, 7), Radius: 1},
		},
	}
}

// Walls is a 10×10 map with three two-cell-thick walls forcing a zig-zag.
func Walls() Scenario {
	return Scenario{
		Name:   "walls",
		Title:  "10×10 map with three thick walls",
		Width:  10,
		Height: 10,
		Conn:   grid.Conn8,
		Start:  cell(10, 1),
		Goal:   cell(2, 1),
		Shapes: []obstacle.Shape{
			obstacle.Rect{Min: cell(2, 3), Max: cell(3, 10)},
			obstacle.Rect{Min: cell(6, 1), Max: cell(7, 8)},
			obstacle.Rect{Min: cell(9, 3), Max: cell(10, 10)},
		},
	}
}

// Maze is a 16×8 maze of one-cell-thick walls.
func Maze() Scenario {
	return Scenario{
		Name:   "maze",
		Title:  "16×8 maze",
		Width:  16,
		Height: 8,
		Conn:   grid.Conn8,
		Start:  cell(3, 6),
		Goal:   cell(16, 1),
		Shapes: []obstacle.Shape{
			// vertical
			obstacle.VWall(2, 5, 7),
			obstacle.VWall(2, 1, 3),
			obstacle.VWall(5, 5, 8),
			obstacle.VWall(7, 2, 7),
			obstacle.VWall(9, 4, 7),
			obstacle.VWall(11, 4, 5),
			obstacle.VWall(12, 1, 2),
			obstacle.VWall(13, 5, 7),
			obstacle.VWall(16, 2, 3),
			obstacle.VWall(13, 2, 3),
			obstacle.VWall(14, 2, 3),
			// horizontal
			obstacle.HWall(3, 2, 5),
			obstacle.HWall(5, 2, 5),
			obstacle.HWall(7, 2, 3),
			obstacle.HWall(2, 9, 14),
			obstacle.HWall(4, 9, 11),
			obstacle.HWall(7, 7, 15),
			obstacle.HWall(5, 13, 16),
		},
	}
}
