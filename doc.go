// Package texforge turns in-memory numeric data and rendered charts into
// LaTeX source fragments ready to \input into a paper.
//
// 🚀 What is texforge?
//
//	A small, stateless library that brings together:
//		• Matrix environments: wrap a 2-D grid in pmatrix/bmatrix/… strings
//		• siunitx tables: tabularx output with S-column numeric formatting
//		• Figure export: rewrite go-chart figures as pgfplots/TikZ includes,
//		  keeping (or neutralizing) colors, line styles and markers
//
// ✨ Why choose texforge?
//
//   - Predictable output – every formatter is a pure input→string transform
//   - Fail-fast validation – malformed grids error before a byte is emitted
//   - Read-only figures – charts are consumed, never mutated or re-rendered
//   - Skip-and-report – unsupported plot artifacts are skipped, not fatal
//
// Everything is organized under four subpackages:
//
//	grid/    — rectangular NumericGrid data model, validation, cell rendering
//	matrix/  — LaTeX matrix-environment formatter
//	tabular/ — siunitx tabularx formatter with optional headings
//	pgf/     — go-chart figure → pgfplots/TikZ exporter
//
// The emitted figures rely on the LaTeX packages pgfplots (with the
// groupplots library), xcolor and siunitx; the library itself compiles
// nothing and never touches a TeX toolchain.
//
// Dive into the examples/ directory for full scenarios.
//
//	go get github.com/texforge/texforge
package texforge
