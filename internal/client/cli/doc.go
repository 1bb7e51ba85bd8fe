// Package cli provides the interactive jobapp terminal client.
//
// It builds the state core from the seed, wires the screen services and
// runs a REPL. Screens are login, search, favorites, profile and income;
// every screen except login needs an active session. A Navigator tracks
// the visible screen and its back history, and is forced back to login,
// with history cleared, whenever the session ends.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, Navigator and runREPL for details.
package cli
