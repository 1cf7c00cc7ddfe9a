// Package preflight provides readiness checks for the filesystem paths a
// conversion touches.
//
// These checks run in two contexts:
//   - convert calls RunAll before parsing so an unreadable input or an
//     unwritable output directory fails before any work is done.
//   - "mpd2html config validate" prints every result as a table.
//
// Optional directories (log_dir, assets_dir) are only checked when set.
package preflight
