// Package network describes road networks: named places joined by roads
// with a travel time in minutes. A Network is plain data; Graph turns it
// into a core.Graph ready for routing.
package network

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/roadtime/core"
)

var (
	// ErrNoRoads is returned when a network defines no roads at all.
	ErrNoRoads = errors.New("network: no roads defined")

	// ErrInvalidRoad is returned for a road with an empty endpoint or a
	// negative or non-finite travel time.
	ErrInvalidRoad = errors.New("network: invalid road")
)

// Road is an undirected road between two places.
type Road struct {
	From    string  `koanf:"from" json:"from"`
	To      string  `koanf:"to" json:"to"`
	Minutes float64 `koanf:"minutes" json:"minutes"`
}

// Network is a named list of roads. Places are implied by road endpoints.
type Network struct {
	Name  string `koanf:"name" json:"name"`
	Roads []Road `koanf:"roads" json:"roads"`
}

// Validate checks every road, reporting the first bad one by index.
func (n Network) Validate() error {
	if len(n.Roads) == 0 {
		return ErrNoRoads
	}
	for i, r := range n.Roads {
		switch {
		case r.From == "" || r.To == "":
			return fmt.Errorf("%w: road %d has an empty endpoint", ErrInvalidRoad, i)
		case r.Minutes < 0 || math.IsNaN(r.Minutes) || math.IsInf(r.Minutes, 0):
			return fmt.Errorf("%w: road %d (%s–%s) has %v minutes", ErrInvalidRoad, i, r.From, r.To, r.Minutes)
		}
	}

	return nil
}

// Graph validates n and builds a fresh graph from it. Roads are added in
// order, so the graph lists places in the order they first appear.
func (n Network) Graph() (*core.Graph, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	g := core.NewGraph()
	for i, r := range n.Roads {
		if err := g.AddEdge(r.From, r.To, r.Minutes); err != nil {
			return nil, fmt.Errorf("network: road %d: %w", i, err)
		}
	}

	return g, nil
}

// Erode returns the built-in map of the Erode district taluks with
// approximate travel times.
func Erode() Network {
	return Network{
		Name: "Erode district",
		Roads: []Road{
			{From: "Erode", To: "Bhavani", Minutes: 16},
			{From: "Erode", To: "Perundurai", Minutes: 20},
			{From: "Erode", To: "Modakkurichi", Minutes: 12},
			{From: "Bhavani", To: "Gobichettipalayam", Minutes: 23},
			{From: "Gobichettipalayam", To: "Sathyamangalam", Minutes: 30},
			{From: "Perundurai", To: "Kangeyam", Minutes: 24},
			{From: "Modakkurichi", To: "Kangeyam", Minutes: 28},
		},
	}
}
