// Package transformer renders ELEVATE example markup in the syntax of each
// supported front-end framework.
//
// The pipeline is Parse (host UI nodes to IR), Generate (IR plus a framework
// profile to source text) and Transform, which runs both over a sequence of
// top-level nodes and degrades any failure to FallbackComment so that a
// documentation page never breaks because of an example.
//
// All functions are pure and safe for concurrent use.
package transformer
