package graph

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	apperrors "github.com/Iron-Ham/algoviz/internal/errors"
)

func TestGraph_Arcs(t *testing.T) {
	tests := []struct {
		name     string
		directed bool
		node     string
		want     []Arc
	}{
		{
			name:     "undirected sees both directions",
			directed: false,
			node:     "B",
			want: []Arc{
				{EdgeID: "A-B", To: "A", Weight: 4},
				{EdgeID: "B-C", To: "C", Weight: 2},
			},
		},
		{
			name:     "directed sees outgoing only",
			directed: true,
			node:     "B",
			want: []Arc{
				{EdgeID: "B-C", To: "C", Weight: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(tt.directed)
			g.AddEdge("A", "B", 4)
			g.AddEdge("B", "C", 2)

			if diff := cmp.Diff(tt.want, g.Arcs(tt.node)); diff != "" {
				t.Errorf("Arcs(%q) mismatch (-want +got):\n%s", tt.node, diff)
			}
		})
	}
}

func TestGraph_NodeOrder(t *testing.T) {
	g := New(false)
	g.AddNode("C")
	g.AddEdge("A", "C", 1)
	g.AddEdge("A", "B", 1)

	if diff := cmp.Diff([]string{"C", "A", "B"}, g.Nodes); diff != "" {
		t.Errorf("node order (-want +got):\n%s", diff)
	}
	if g.Index("B") != 2 || g.Index("Z") != -1 {
		t.Errorf("Index() = %d, %d", g.Index("B"), g.Index("Z"))
	}
}

func TestGraph_Find(t *testing.T) {
	g := New(false)
	g.AddEdge("A", "B", 3)

	if _, ok := g.Find("B", "A"); !ok {
		t.Error("undirected Find(B, A) should match edge A-B")
	}

	d := New(true)
	d.AddEdge("A", "B", 3)
	if _, ok := d.Find("B", "A"); ok {
		t.Error("directed Find(B, A) should not match edge A-B")
	}
}

func TestGraph_Validate(t *testing.T) {
	tests := []struct {
		name    string
		build   func() *Graph
		wantErr bool
	}{
		{
			name: "valid",
			build: func() *Graph {
				g := New(false)
				g.AddEdge("A", "B", 1)
				return g
			},
		},
		{
			name: "self loop",
			build: func() *Graph {
				g := New(false)
				g.AddEdge("A", "A", 1)
				return g
			},
			wantErr: true,
		},
		{
			name: "duplicate edge",
			build: func() *Graph {
				g := New(false)
				g.AddEdge("A", "B", 1)
				g.AddEdge("A", "B", 2)
				return g
			},
			wantErr: true,
		},
		{
			name: "unknown endpoint",
			build: func() *Graph {
				g := New(false)
				g.AddNode("A")
				g.Edges = append(g.Edges, Edge{ID: "A-Z", From: "A", To: "Z"})
				return g
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build().Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, apperrors.ErrInvalidInput) {
				t.Errorf("error %v should match ErrInvalidInput", err)
			}
		})
	}
}

func TestGraph_Clone(t *testing.T) {
	g := New(true)
	g.AddEdge("A", "B", 1)

	c := g.Clone()
	c.AddEdge("B", "C", 5)
	c.Edges[0].Weight = 99

	if len(g.Nodes) != 2 || len(g.Edges) != 1 || g.Edges[0].Weight != 1 {
		t.Errorf("original changed after clone mutation: %+v", g)
	}
	if !c.HasNode("C") {
		t.Error("clone lost its index")
	}
}

func TestGraph_HasNegativeWeight(t *testing.T) {
	g := New(true)
	g.AddEdge("A", "B", 1)
	if g.HasNegativeWeight() {
		t.Error("HasNegativeWeight() = true for positive graph")
	}
	g.AddEdge("B", "C", -2)
	if !g.HasNegativeWeight() {
		t.Error("HasNegativeWeight() = false with a negative edge")
	}
}
