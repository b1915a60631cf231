package graphio

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/kcover/core"
)

// ErrSyntax indicates malformed graph text. Errors wrap it with the byte
// offset of the problem.
var ErrSyntax = errors.New("graphio: syntax error")

// ParseMapLiteral reads a graph written as `{1={2=10, 3=5}, 2={}}`.
//
// Edge targets are not required to be keys: the graph is returned exactly as
// written, so a dangling target is left for the solver (or core.Graph.Validate)
// to report. A vertex key listed twice is a syntax error.
func ParseMapLiteral(r io.Reader) (core.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}
	p := &mapParser{src: data}

	g, err := p.graph()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, p.errorf("unexpected %q after graph", p.src[p.pos])
	}

	return g, nil
}

// mapParser is a recursive-descent parser over the whole input.
type mapParser struct {
	src []byte
	pos int
}

func (p *mapParser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w at offset %d: %s", ErrSyntax, p.pos, fmt.Sprintf(format, args...))
}

func (p *mapParser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// expect consumes c after optional whitespace.
func (p *mapParser) expect(c byte) error {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return p.errorf("expected %q, got end of input", c)
	}
	if p.src[p.pos] != c {
		return p.errorf("expected %q, got %q", c, p.src[p.pos])
	}
	p.pos++

	return nil
}

// peek returns the next non-space byte, or 0 at end of input.
func (p *mapParser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}

	return p.src[p.pos]
}

// integer reads an optionally signed decimal integer.
func (p *mapParser) integer() (int64, error) {
	p.skipSpace()
	start := p.pos
	if p.pos < len(p.src) && (p.src[p.pos] == '-' || p.src[p.pos] == '+') {
		p.pos++
	}
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	text := string(p.src[start:p.pos])
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		p.pos = start
		if text == "" {
			return 0, p.errorf("expected integer")
		}
		return 0, p.errorf("bad integer %q", text)
	}

	return v, nil
}

// entries parses `{k=v, k=v}` calling value after each `k=`.
func (p *mapParser) entries(value func(key int64) error) error {
	if err := p.expect('{'); err != nil {
		return err
	}
	if p.peek() == '}' {
		p.pos++
		return nil
	}
	for {
		key, err := p.integer()
		if err != nil {
			return err
		}
		if err = p.expect('='); err != nil {
			return err
		}
		if err = value(key); err != nil {
			return err
		}
		switch p.peek() {
		case ',':
			p.pos++
		case '}':
			p.pos++
			return nil
		case 0:
			return p.errorf("unterminated map")
		default:
			return p.errorf("expected ',' or '}', got %q", p.src[p.pos])
		}
	}
}

func (p *mapParser) graph() (core.Graph, error) {
	g := core.NewGraph(0)
	err := p.entries(func(key int64) error {
		v := int(key)
		if g.HasVertex(v) {
			return p.errorf("vertex %d listed twice", v)
		}
		g.AddVertex(v)

		return p.entries(func(to int64) error {
			w, err := p.integer()
			if err != nil {
				return err
			}
			if w < 0 {
				return fmt.Errorf("graphio: offset %d: %w: edge %d→%d weight=%d", p.pos, core.ErrBadWeight, v, to, w)
			}
			g[v][int(to)] = w

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return g, nil
}

// FormatMapLiteral writes g in the map-literal format with vertices and
// neighbors in ascending order.
func FormatMapLiteral(w io.Writer, g core.Graph) error {
	buf := []byte{'{'}
	for i, v := range g.Vertices() {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
		buf = append(buf, "={"...)
		ids, _ := g.NeighborIDs(v)
		for j, to := range ids {
			if j > 0 {
				buf = append(buf, ", "...)
			}
			buf = strconv.AppendInt(buf, int64(to), 10)
			buf = append(buf, '=')
			buf = strconv.AppendInt(buf, g[v][to], 10)
		}
		buf = append(buf, '}')
	}
	buf = append(buf, '}', '\n')
	_, err := w.Write(buf)

	return err
}
