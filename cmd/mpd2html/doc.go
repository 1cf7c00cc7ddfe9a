// Package main hosts the mpd2html CLI entrypoint and command graph.
//
// convert parses accessioning exports and writes the sortable listing pages;
// inspect and dump expose the parsed catalog without writing HTML; config
// scaffolds and checks the TOML configuration. Parsing and rendering live in
// internal/catalog and internal/page; this package only wires flags, config
// and logging onto them.
package main
