package core

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Order is one person's drink in a round.
type Order struct {
	Name  string `json:"name" yaml:"name"`
	Drink string `json:"drink" yaml:"drink"`
}

// Round is the set of orders for one sitting.
type Round struct {
	ID        string    `json:"id,omitempty" yaml:"id,omitempty"`
	StartedAt time.Time `json:"started_at" yaml:"started_at"`
	Orders    []Order   `json:"orders" yaml:"orders"`
}

// NewRound starts an empty round.
func NewRound() *Round {
	return &Round{StartedAt: time.Now().UTC()}
}

// AddToRound records drink for name. A second order for the same name
// replaces the first one in place.
func (r *Round) AddToRound(name, drink string) {
	for i := range r.Orders {
		if r.Orders[i].Name == name {
			r.Orders[i].Drink = drink
			return
		}
	}
	r.Orders = append(r.Orders, Order{Name: name, Drink: drink})
}

// Len returns the number of orders.
func (r *Round) Len() int {
	return len(r.Orders)
}

// PrintOrder writes the round as a table.
func (r *Round) PrintOrder(w io.Writer) {
	if len(r.Orders) == 0 {
		_, _ = fmt.Fprintln(w, "No drinks in this round yet")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Round")
	t.AppendHeader(table.Row{"Name", "Drink"})
	for _, o := range r.Orders {
		t.AppendRow(table.Row{o.Name, o.Drink})
	}
	t.AppendFooter(table.Row{"Total", len(r.Orders)})
	t.Render()
}
