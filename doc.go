// Package roadtime finds the fastest route between named places of a road
// network and recomputes it as traffic delays are added to individual roads.
//
// 🚦 What is roadtime?
//
//	A small in-memory routing stack:
//		• core/      — undirected weighted graph: AddEdge, UpdateWeight, Neighbors
//		• dijkstra/  — early-exit shortest path: Find(g, start, end)
//		• bfs/       — fewest-roads traversal and reachability
//		• network/   — road-network files (TOML), the built-in Erode map, live reload
//		• server/    — JSON HTTP API: routes, traffic, what-if routes
//		• cmd/roadtime — interactive console and --serve entry point
//
// Quick ASCII example (minutes):
//
//	    Erode ──12── Modakkurichi
//	      │               │
//	      20              28
//	      │               │
//	  Perundurai ──24── Kangeyam
//
//	Erode → Kangeyam takes 40 minutes through Modakkurichi. Add 10 minutes
//	of traffic on Erode–Modakkurichi and Perundurai wins with 44.
//
// A graph is not safe for concurrent use; the server serializes access.
//
//	go install github.com/katalvlaran/roadtime/cmd/roadtime@latest
package roadtime
