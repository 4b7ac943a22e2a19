package compiler

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/aretw0/dialsim/pkg/domain"
)

// Parser is responsible for converting input lines into Turns.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// ParseLine decodes a single instruction such as "R1000" or "L5".
// The direction symbol must be immediately followed by an unsigned decimal tick count.
func (p *Parser) ParseLine(line string) (domain.Turn, error) {
	if line == "" {
		return domain.Turn{}, domain.ErrEmptyLine
	}

	r, size := utf8.DecodeRuneInString(line)
	dir, err := domain.ParseDirection(r)
	if err != nil {
		return domain.Turn{}, err
	}

	tail := line[size:]
	ticks, err := strconv.ParseUint(tail, 10, 32)
	if err != nil {
		return domain.Turn{}, fmt.Errorf("%w: %q", domain.ErrMalformedTicks, tail)
	}

	return domain.Turn{Direction: dir, Ticks: uint32(ticks)}, nil
}

// Parse reads one instruction per line until EOF.
// The first malformed line aborts parsing and nothing is returned for the lines before it.
func (p *Parser) Parse(r io.Reader) ([]domain.Turn, error) {
	var turns []domain.Turn

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		turn, err := p.ParseLine(text)
		if err != nil {
			return nil, &domain.ParseError{Line: lineNo, Text: text, Err: err}
		}
		turns = append(turns, turn)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return turns, nil
}
