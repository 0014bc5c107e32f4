// Package output renders routes and places for the console.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/roadtime/dijkstra"
)

// Minutes formats a travel time without trailing zeros: 40, 23.5.
func Minutes(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64)
}

// PrintPlaces lists the known places on one line.
func PrintPlaces(w io.Writer, name string, places []string) {
	bold := color.New(color.Bold)

	if name != "" {
		bold.Fprintf(w, "%s\n", name)
	}
	fmt.Fprintf(w, "Places: %s\n", strings.Join(places, ", "))
}

// PrintRoute prints the outcome of a route search. For an unreachable
// destination it names the places that can be reached from the start,
// when the caller supplies them.
func PrintRoute(w io.Writer, from, to string, res dijkstra.Result, reachable []string) {
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	if !res.Reachable() {
		red.Fprintf(w, "No route from %s to %s.\n", from, to)
		if len(reachable) > 0 {
			yellow.Fprintf(w, "Reachable from %s: %s\n", from, strings.Join(reachable, ", "))
		}
		return
	}

	fmt.Fprint(w, "Path: ")
	cyan.Fprint(w, strings.Join(res.Path, " -> "))
	fmt.Fprint(w, " | Estimated travel time: ")
	green.Fprintf(w, "%s minutes\n", Minutes(res.Cost))
}

// PrintTrafficUpdate confirms a road's new travel time.
func PrintTrafficUpdate(w io.Writer, a, b string, delay, minutes float64) {
	yellow := color.New(color.FgYellow)

	yellow.Fprintf(w, "Traffic on %s – %s: +%s minutes, now %s minutes.\n",
		a, b, Minutes(delay), Minutes(minutes))
}
