// Package io writes and reads qrlabels artifacts on the filesystem.
//
// # Export
//
// An [Exporter] assembles a run's outputs under its output directory:
//
//	<dir>/<base>.pdf               the printable document (always)
//	<dir>/svgs/<base>_p<N>.svg     one SVG per page (SaveSVGs)
//	<dir>/pngs/<base>_p<N>.png     one PNG preview per page (SavePNGs)
//	<dir>/<base>_codes.txt         the code list (SaveCodes)
//
// Before new page files are written, stale <base>_p<N> files of the same
// type from an earlier run are removed so the directory never mixes two
// runs.
//
// # Import
//
// [ImportCodes] reads a code list written by a previous run back in, so
// the same codes can be printed again:
//
//	codes, err := io.ImportCodes("out/garage-qr-codes_codes.txt")
//
// # Preflight
//
// [CheckWritable] verifies the output directory can be created and
// written before any rendering starts.
package io
