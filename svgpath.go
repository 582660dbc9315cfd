package layers

import (
	"errors"
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// ErrPathSyntax is returned by ParseSVGPath for malformed path data.
var ErrPathSyntax = errors.New("layers: bad SVG path data")

// svgArgCounts is the number of numeric arguments per SVG path command.
var svgArgCounts = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1,
	'C': 6, 'S': 4, 'Q': 4, 'T': 2,
	'A': 7, 'Z': 0,
}

// ParseSVGPath compiles SVG path data ("M10 10 h 20 a5 5 0 0 1 ...") into
// a Path. All commands in absolute and relative form are supported,
// including implicit command repetition; elliptical arcs become cubic
// Beziers.
//
// Path data must begin with a moveto. Drawing commands that follow a
// closepath start a new subpath at the closed subpath's start point.
//
// On malformed input the path parsed up to the error is returned together
// with an error wrapping ErrPathSyntax, mirroring how browsers render path
// data up to the first bad token.
func ParseSVGPath(d string) (*Path, error) {
	p := NewPath()
	data := []byte(d)
	i := skipCommaWhitespace(data, 0)
	if i == len(data) {
		return p, nil
	}

	var (
		args     [7]float64
		prevCmd  byte
		lastCtrl Point // reflected for S/T
	)

	for {
		i = skipCommaWhitespace(data, i)
		if i >= len(data) {
			break
		}

		cmd := prevCmd
		if isCommandByte(data[i]) {
			cmd = data[i]
			i++
		} else if prevCmd == 0 || prevCmd == 'Z' || prevCmd == 'z' {
			return p, fmt.Errorf("%w: expected command at offset %d", ErrPathSyntax, i)
		}
		if prevCmd == 0 && cmd&^0x20 != 'M' {
			return p, fmt.Errorf("%w: path data must start with a moveto, got %q", ErrPathSyntax, cmd)
		}

		upper := cmd &^ 0x20
		n := svgArgCounts[upper]
		for j := 0; j < n; j++ {
			i = skipCommaWhitespace(data, i)
			if upper == 'A' && (j == 3 || j == 4) {
				if i < len(data) && (data[i] == '0' || data[i] == '1') {
					args[j] = float64(data[i] - '0')
					i++
					continue
				}
				return p, fmt.Errorf("%w: arc flag must be 0 or 1 at offset %d", ErrPathSyntax, i)
			}
			num, size := strconv.ParseFloat(data[i:])
			if size == 0 {
				return p, fmt.Errorf("%w: command %q needs %d numbers, offset %d", ErrPathSyntax, cmd, n, i)
			}
			args[j] = num
			i += size
		}

		cur := p.CurrentPoint()
		rel := cmd != upper
		abs := func(x, y float64) Point {
			if rel {
				return Point{X: cur.X + x, Y: cur.Y + y}
			}
			return Point{X: x, Y: y}
		}

		switch upper {
		case 'M':
			pt := abs(args[0], args[1])
			p.MoveTo(pt.X, pt.Y)
		case 'L':
			pt := abs(args[0], args[1])
			p.LineTo(pt.X, pt.Y)
		case 'H':
			x := args[0]
			if rel {
				x += cur.X
			}
			p.LineTo(x, cur.Y)
		case 'V':
			y := args[0]
			if rel {
				y += cur.Y
			}
			p.LineTo(cur.X, y)
		case 'C':
			c1 := abs(args[0], args[1])
			c2 := abs(args[2], args[3])
			pt := abs(args[4], args[5])
			p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
			lastCtrl = c2
		case 'S':
			c1 := cur
			if isAnyOf(prevCmd, 'C', 'S') {
				c1 = cur.Mul(2).Sub(lastCtrl)
			}
			c2 := abs(args[0], args[1])
			pt := abs(args[2], args[3])
			p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
			lastCtrl = c2
		case 'Q':
			c := abs(args[0], args[1])
			pt := abs(args[2], args[3])
			p.QuadraticTo(c.X, c.Y, pt.X, pt.Y)
			lastCtrl = c
		case 'T':
			c := cur
			if isAnyOf(prevCmd, 'Q', 'T') {
				c = cur.Mul(2).Sub(lastCtrl)
			}
			pt := abs(args[0], args[1])
			p.QuadraticTo(c.X, c.Y, pt.X, pt.Y)
			lastCtrl = c
		case 'A':
			pt := abs(args[5], args[6])
			p.ArcTo(args[0], args[1], args[2], args[3] == 1, args[4] == 1, pt.X, pt.Y)
		case 'Z':
			p.Close()
		default:
			return p, fmt.Errorf("%w: unknown command %q at offset %d", ErrPathSyntax, cmd, i-1)
		}

		// Coordinates following a moveto are implicit linetos.
		switch cmd {
		case 'M':
			cmd = 'L'
		case 'm':
			cmd = 'l'
		}
		prevCmd = cmd
	}
	return p, nil
}

func skipCommaWhitespace(data []byte, i int) int {
	for i < len(data) {
		switch data[i] {
		case ' ', ',', '\n', '\r', '\t', '\f':
			i++
		default:
			return i
		}
	}
	return i
}

// isCommandByte reports whether c is an SVG path command letter. 'e' and
// 'E' are excluded since they only occur as number exponents.
func isCommandByte(c byte) bool {
	_, ok := svgArgCounts[c&^0x20]
	return ok && (c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z')
}

// isAnyOf reports whether cmd, in either case, is one of the given
// upper-case commands.
func isAnyOf(cmd byte, upper ...byte) bool {
	for _, u := range upper {
		if cmd&^0x20 == u {
			return true
		}
	}
	return false
}
