package almanac

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const seedsHeader = "seeds:"

// ParseString parses an almanac held in memory.
func ParseString(s string) (*Almanac, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads a "seeds:" header followed by blank-line separated stage
// blocks. Each block is a title line ending in ':' and rule lines of the
// form "destination source length". Any failure is a *ParseError.
func Parse(r io.Reader) (*Almanac, error) {
	p := &parser{scanner: bufio.NewScanner(r)}
	return p.parse()
}

type parser struct {
	scanner *bufio.Scanner
	line    int
}

// next returns the next line with trailing whitespace removed.
func (p *parser) next() (string, bool) {
	if !p.scanner.Scan() {
		return "", false
	}
	p.line++
	return strings.TrimRight(p.scanner.Text(), " \t\r"), true
}

func (p *parser) parse() (*Almanac, error) {
	seeds, err := p.parseSeeds()
	if err != nil {
		return nil, err
	}

	var stages []*Stage
	for {
		stage, err := p.parseStage()
		if err != nil {
			return nil, err
		}
		if stage == nil {
			break
		}
		stages = append(stages, stage)
	}
	if err := p.scanner.Err(); err != nil {
		return nil, &ParseError{Section: "input", Err: err}
	}
	if len(stages) == 0 {
		return nil, &ParseError{Section: "stages", Err: ErrNoStages}
	}
	return New(seeds, NewPipeline(stages...)), nil
}

func (p *parser) parseSeeds() ([]uint64, error) {
	var header string
	for {
		line, ok := p.next()
		if !ok {
			if err := p.scanner.Err(); err != nil {
				return nil, &ParseError{Section: "input", Err: err}
			}
			return nil, &ParseError{Section: "seeds", Err: ErrMissingSeeds}
		}
		if strings.TrimSpace(line) != "" {
			header = line
			break
		}
	}

	rest, ok := strings.CutPrefix(header, seedsHeader)
	if !ok {
		return nil, &ParseError{Section: "seeds", Line: p.line, Err: ErrMissingSeeds}
	}
	fields := strings.Fields(rest)
	seeds := make([]uint64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, &ParseError{Section: "seeds", Line: p.line, Err: fmt.Errorf("seed %q: %w", f, err)}
		}
		seeds = append(seeds, v)
	}
	return seeds, nil
}

// parseStage returns nil, nil once the input is exhausted.
func (p *parser) parseStage() (*Stage, error) {
	var title string
	for {
		line, ok := p.next()
		if !ok {
			return nil, nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		t, ok := strings.CutSuffix(strings.TrimSpace(line), ":")
		if !ok {
			return nil, &ParseError{
				Section: "stages",
				Line:    p.line,
				Err:     fmt.Errorf("expected stage title, got %q", line),
			}
		}
		title = t
		break
	}

	section := fmt.Sprintf("stage %q", title)
	var rules []Rule
	for {
		line, ok := p.next()
		if !ok || strings.TrimSpace(line) == "" {
			break
		}
		r, err := parseRule(line)
		if err != nil {
			return nil, &ParseError{Section: section, Line: p.line, Err: err}
		}
		rules = append(rules, r)
	}

	stage, err := NewStage(title, rules)
	if err != nil {
		return nil, &ParseError{Section: section, Err: err}
	}
	return stage, nil
}

func parseRule(line string) (Rule, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Rule{}, fmt.Errorf("%w: %q", ErrMalformedRule, line)
	}
	var nums [3]uint64
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return Rule{}, fmt.Errorf("%w: %q: %w", ErrMalformedRule, f, err)
		}
		nums[i] = v
	}
	return NewRule(nums[0], nums[1], nums[2])
}
