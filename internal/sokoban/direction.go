package sokoban

import (
	"fmt"
	"strings"
)

// Direction is one of the four worker moves.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every direction in clockwise order.
var Directions = []Direction{North, East, South, West}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Delta returns the (drow, dcol) offset for one step in this direction.
// North decreases the row (screen coordinates).
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return d
	}
}

// ParseDirection accepts full names, compass letters, arrow names and the
// LURD letters used by published Sokoban solutions.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north", "up", "u":
		return North, nil
	case "e", "east", "right", "r":
		return East, nil
	case "s", "south", "down", "d":
		return South, nil
	case "w", "west", "left", "l":
		return West, nil
	}
	return 0, fmt.Errorf("sokoban: unknown direction %q", s)
}

// ParseLURD parses a solution string such as "rrdLUr".
// Case is ignored (upper case marks pushes in the notation); whitespace is skipped.
func ParseLURD(s string) ([]Direction, error) {
	dirs := make([]Direction, 0, len(s))
	for i, r := range s {
		switch r {
		case 'l', 'L':
			dirs = append(dirs, West)
		case 'u', 'U':
			dirs = append(dirs, North)
		case 'r', 'R':
			dirs = append(dirs, East)
		case 'd', 'D':
			dirs = append(dirs, South)
		case ' ', '\t', '\n', '\r':
		default:
			return nil, fmt.Errorf("sokoban: invalid move %q at offset %d", r, i)
		}
	}
	return dirs, nil
}

// LURD returns the solution letter for a move, upper case for pushes.
func (d Direction) LURD(push bool) rune {
	var r rune
	switch d {
	case West:
		r = 'l'
	case North:
		r = 'u'
	case East:
		r = 'r'
	case South:
		r = 'd'
	default:
		return '?'
	}
	if push {
		r -= 'a' - 'A'
	}
	return r
}
