package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/katalvlaran/roadtime/bfs"
	"github.com/katalvlaran/roadtime/core"
	"github.com/katalvlaran/roadtime/dijkstra"
	"github.com/katalvlaran/roadtime/output"
)

// errEndOfInput ends a session quietly when stdin runs dry.
var errEndOfInput = errors.New("end of input")

// session is the interactive console flow: pick two places, show the
// fastest route, optionally add traffic to one road and show it again.
type session struct {
	in    *bufio.Scanner
	out   io.Writer
	g     *core.Graph
	name  string
	title cases.Caser
}

func newSession(r io.Reader, w io.Writer, g *core.Graph, name string) *session {
	return &session{
		in:    bufio.NewScanner(r),
		out:   w,
		g:     g,
		name:  name,
		title: cases.Title(language.English),
	}
}

func (s *session) run() error {
	err := s.steps()
	if errors.Is(err, errEndOfInput) {
		fmt.Fprintln(s.out)
		return nil
	}
	return err
}

func (s *session) steps() error {
	output.PrintPlaces(s.out, s.name, s.g.Vertices())

	start, err := s.askPlace("Enter the starting Place")
	if err != nil {
		return err
	}
	end, err := s.askPlace("Enter the destination Place")
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "\nFinding the shortest route from %s to %s...\n", start, end)
	if err := s.printRoute(start, end); err != nil {
		return err
	}

	answer, err := s.readLine("\nDo you want to update traffic on any route? (yes/no): ")
	if err != nil {
		return err
	}
	if strings.ToLower(answer) != "yes" {
		return nil
	}

	roadStart, err := s.askPlace("Enter the starting Place of the route to update")
	if err != nil {
		return err
	}
	roadEnd, err := s.askPlace("Enter the destination Place of the route to update")
	if err != nil {
		return err
	}
	delay, err := s.askDelay()
	if err != nil {
		return err
	}

	if err := applyDelay(s.out, s.g, roadStart, roadEnd, delay); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "\nUpdated route from %s to %s after traffic adjustment...\n", start, end)
	return s.printRoute(start, end)
}

// askPlace re-prompts until the answer names a known place.
func (s *session) askPlace(prompt string) (string, error) {
	for {
		line, err := s.readLine(fmt.Sprintf("%s (Options: %s): ", prompt, strings.Join(s.g.Vertices(), ", ")))
		if err != nil {
			return "", err
		}
		name := s.title.String(line)
		if s.g.HasVertex(name) {
			return name, nil
		}
		fmt.Fprintln(s.out, "Invalid place name. Please try again.")
	}
}

// askDelay re-prompts until the answer is a non-negative whole number.
func (s *session) askDelay() (float64, error) {
	for {
		line, err := s.readLine("Enter the extra travel time (in minutes) due to traffic: ")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= 0 {
			return float64(n), nil
		}
		fmt.Fprintln(s.out, "Please enter a valid non-negative integer for extra travel time.")
	}
}

func (s *session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", errEndOfInput
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *session) printRoute(start, end string) error {
	return printRoute(s.out, s.g, start, end)
}

// printRoute finds and prints the fastest route. For an unreachable
// destination it lists the places that can be reached instead.
func printRoute(w io.Writer, g *core.Graph, start, end string) error {
	res, err := dijkstra.Find(g, start, end)
	if err != nil {
		return err
	}

	var reachable []string
	if !res.Reachable() {
		if reachable, err = bfs.Reachable(g, start); err != nil {
			return err
		}
	}
	output.PrintRoute(w, start, end, res, reachable)

	return nil
}

// applyDelay adds delay minutes to the road between a and b. A missing road
// is reported to the user and is not an error.
func applyDelay(w io.Writer, g *core.Graph, a, b string, delay float64) error {
	err := g.UpdateWeight(a, b, delay)
	switch {
	case errors.Is(err, core.ErrEdgeNotFound):
		fmt.Fprintf(w, "No direct route exists between %s and %s.\n", a, b)
		return nil
	case err != nil:
		return err
	}

	minutes, err := g.Weight(a, b)
	if err != nil {
		return err
	}
	output.PrintTrafficUpdate(w, a, b, delay, minutes)

	return nil
}
