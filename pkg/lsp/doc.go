// Package lsp implements the humorlint language server.
//
// The server speaks JSON-RPC 2.0 over stdio with Content-Length framing. It
// keeps open documents in a DocumentStore, re-evaluates the full text of a
// document on every open, change and save, and publishes the resulting
// diagnostics with UTF-16 columns.
package lsp
