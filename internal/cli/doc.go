// Package cli implements the asset-kit command line.
//
// Each subcommand is a kong command struct whose Run method loads its
// inputs, calls into the imaging, palette or pipeline packages, writes the
// output file and prints a JSON result object to the context writer.
//
// # Commands
//
// Resizing:
//   - resize (default): contain-centered, cover-crop or stretch to exact dimensions
//   - center: fit an icon inside a padded square transparent canvas
//
// Transparency:
//   - remove-bg (alias remove-white): near-white pixels become transparent
//   - erode: pull the alpha boundary inward (min-filter or shrink)
//   - threshold-black: visible pixels become pure black
//
// Color:
//   - palette: derive a themed palette from a block texture and an accent image
//
// Config-driven:
//   - process: per-asset-type transparency and compression pipeline
//   - batch: resize every asset listed in an asset config
//
// Inspection:
//   - info: dimensions, format, alpha and file size
//
// # Errors
//
// Run methods return errors from the errors package unchanged. The caller
// logs them and exits with status 1. Per-asset failures inside batch are
// part of the JSON result instead.
package cli
