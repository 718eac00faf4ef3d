// Package client assembles the NoteTaker terminal client: it wires the
// service layer to the TUI and owns the top-level run loop.
package client
