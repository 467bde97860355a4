// Package cli provides the interactive legal-consultant command-line client.
//
// It wires configuration, local storage, the consultation API client, and an
// interactive REPL. On startup a background corpus sync kicks off when the
// local database is stale; the prompt is available immediately.
//
// Key features:
//   - Ask legal questions and view answers with source references
//   - Browse the history of prior successful exchanges
//   - Force a corpus sync or refresh a single legal code
//   - Inspect per-code corpus statistics
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
