// Package wasteland follows left/right instructions around a network of
// labelled nodes.
package wasteland

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

var (
	// ErrMalformedNetwork is returned for unparsable instructions or nodes.
	ErrMalformedNetwork = errors.New("malformed network")
	// ErrUnknownNode is returned when a node references a missing label.
	ErrUnknownNode = errors.New("unknown node")
	// ErrNoPath is returned when a walk can never reach its goal.
	ErrNoPath = errors.New("goal unreachable")
)

type fork struct {
	left, right string
}

// Network is the instruction string and the node map.
type Network struct {
	instructions string
	nodes        map[string]fork
}

// Parse reads the instruction line, a blank line, then "AAA = (BBB, CCC)"
// node lines.
func Parse(r io.Reader) (*Network, error) {
	scanner := bufio.NewScanner(r)
	n := &Network{nodes: make(map[string]fork)}

	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			n.instructions = line
			break
		}
	}
	if n.instructions == "" {
		return nil, fmt.Errorf("%w: no instructions", ErrMalformedNetwork)
	}
	if strings.Trim(n.instructions, "LR") != "" {
		return nil, fmt.Errorf("%w: instructions %q", ErrMalformedNetwork, n.instructions)
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		name, rest, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformedNetwork, line)
		}
		rest = strings.TrimSpace(rest)
		rest, ok = strings.CutPrefix(rest, "(")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformedNetwork, line)
		}
		rest, ok = strings.CutSuffix(rest, ")")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformedNetwork, line)
		}
		left, right, ok := strings.Cut(rest, ",")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformedNetwork, line)
		}
		n.nodes[strings.TrimSpace(name)] = fork{left: strings.TrimSpace(left), right: strings.TrimSpace(right)}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	for name, f := range n.nodes {
		for _, next := range []string{f.left, f.right} {
			if _, ok := n.nodes[next]; !ok {
				return nil, fmt.Errorf("%w: %q referenced by %q", ErrUnknownNode, next, name)
			}
		}
	}
	return n, nil
}

// Steps walks from start until done reports true, counting steps. At least
// one step is always taken. A walk that revisits a (node, instruction)
// state without reaching the goal returns ErrNoPath.
func (n *Network) Steps(start string, done func(string) bool) (int64, error) {
	if _, ok := n.nodes[start]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, start)
	}
	limit := int64(len(n.nodes)) * int64(len(n.instructions))
	node := start
	for steps := int64(1); steps <= limit+1; steps++ {
		f := n.nodes[node]
		if n.instructions[(steps-1)%int64(len(n.instructions))] == 'L' {
			node = f.left
		} else {
			node = f.right
		}
		if done(node) {
			return steps, nil
		}
	}
	return 0, fmt.Errorf("%w: from %q", ErrNoPath, start)
}

// Starts returns the sorted labels ending in suffix.
func (n *Network) Starts(suffix string) []string {
	var out []string
	for name := range n.nodes {
		if strings.HasSuffix(name, suffix) {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

// Part1 counts steps from AAA to ZZZ.
func Part1(r io.Reader) (int64, error) {
	n, err := Parse(r)
	if err != nil {
		return 0, err
	}
	return n.Steps("AAA", func(s string) bool { return s == "ZZZ" })
}

// Part2 walks every node ending in A at once until all stand on nodes
// ending in Z. Each start reaches its goal on a fixed cycle, so the
// answer is the least common multiple of the individual step counts.
func Part2(r io.Reader) (int64, error) {
	n, err := Parse(r)
	if err != nil {
		return 0, err
	}
	starts := n.Starts("A")
	if len(starts) == 0 {
		return 0, fmt.Errorf("%w: no start nodes", ErrNoPath)
	}
	result := int64(1)
	for _, s := range starts {
		steps, err := n.Steps(s, func(s string) bool { return strings.HasSuffix(s, "Z") })
		if err != nil {
			return 0, err
		}
		result = lcm(result, steps)
	}
	return result, nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int64) int64 {
	return a / gcd(a, b) * b
}
