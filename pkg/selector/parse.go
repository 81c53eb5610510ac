package selector

import (
	"github.com/go-loom/loom/pkg/errors"
)

// Parse parses a selector string. Errors carry the byte position of the
// offending input.
func Parse(input string) (Selector, error) {
	p := &parser{input: input}
	groups, err := p.parseGroups()
	if err != nil {
		return Selector{}, err
	}
	return Selector{groups: groups}, nil
}

// MustParse is like Parse but panics on invalid input.
// Use for selector literals known at compile time.
func MustParse(input string) Selector {
	s, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return s
}

type parser struct {
	input string
	pos   int
}

func (p *parser) parseGroups() ([]compound, error) {
	var groups []compound
	for {
		p.skipSpaces()
		g, err := p.parseCompound()
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
		p.skipSpaces()
		if p.eof() {
			return groups, nil
		}
		if p.peek() != ',' {
			return nil, p.errorf("unexpected character %q (combinators are not supported)", p.peek())
		}
		p.pos++
	}
}

func (p *parser) parseCompound() (compound, error) {
	var g compound
	start := p.pos

	if !p.eof() && p.peek() == '*' {
		g.tag = "*"
		p.pos++
	} else if ident := p.readIdent(); ident != "" {
		g.tag = ident
	}

	for !p.eof() {
		switch p.peek() {
		case '#':
			p.pos++
			id := p.readIdent()
			if id == "" {
				return g, p.errorf("expected identifier after '#'")
			}
			g.id = id
		case '.':
			p.pos++
			class := p.readIdent()
			if class == "" {
				return g, p.errorf("expected identifier after '.'")
			}
			g.classes = append(g.classes, class)
		case '[':
			attr, err := p.parseAttr()
			if err != nil {
				return g, err
			}
			g.attrs = append(g.attrs, attr)
		default:
			if p.pos == start {
				return g, p.errorf("expected selector, got %q", p.peek())
			}
			return g, nil
		}
	}

	if p.pos == start {
		return g, p.errorf("empty selector")
	}
	return g, nil
}

func (p *parser) parseAttr() (attrMatch, error) {
	p.pos++ // consume '['
	name := p.readIdent()
	if name == "" {
		return attrMatch{}, p.errorf("expected attribute name after '['")
	}
	if p.eof() {
		return attrMatch{}, p.errorf("unterminated attribute selector")
	}
	switch p.peek() {
	case ']':
		p.pos++
		return attrMatch{name: name}, nil
	case '=':
		p.pos++
		value, err := p.readAttrValue()
		if err != nil {
			return attrMatch{}, err
		}
		if p.eof() || p.peek() != ']' {
			return attrMatch{}, p.errorf("unterminated attribute selector")
		}
		p.pos++
		return attrMatch{name: name, value: value, exact: true}, nil
	default:
		return attrMatch{}, p.errorf("unexpected character %q in attribute selector", p.peek())
	}
}

func (p *parser) readAttrValue() (string, error) {
	if p.eof() {
		return "", p.errorf("expected attribute value")
	}
	if quote := p.peek(); quote == '"' || quote == '\'' {
		p.pos++
		start := p.pos
		for !p.eof() && p.peek() != quote {
			p.pos++
		}
		if p.eof() {
			return "", p.errorf("unterminated quoted value")
		}
		value := p.input[start:p.pos]
		p.pos++
		return value, nil
	}
	start := p.pos
	for !p.eof() && p.peek() != ']' {
		p.pos++
	}
	if p.pos == start {
		return "", p.errorf("expected attribute value")
	}
	return p.input[start:p.pos], nil
}

func (p *parser) readIdent() string {
	start := p.pos
	for !p.eof() && isIdentByte(p.peek()) {
		p.pos++
	}
	return p.input[start:p.pos]
}

func isIdentByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' ||
		b >= '0' && b <= '9' || b == '-' || b == '_'
}

func (p *parser) skipSpaces() {
	for !p.eof() && (p.peek() == ' ' || p.peek() == '\t') {
		p.pos++
	}
}

func (p *parser) peek() byte { return p.input[p.pos] }

func (p *parser) eof() bool { return p.pos >= len(p.input) }

func (p *parser) errorf(format string, args ...any) error {
	args = append([]any{p.pos}, args...)
	return errors.New("selector.Parse", errors.KindParse, "position %d: "+format, args...)
}
