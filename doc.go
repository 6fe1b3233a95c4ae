// Package pos is the system of record for a small retail outlet: a
// flat-file order and sales ledger with derived analytics.
//
// Orders live in a quoted, comma-delimited text file; completed orders are
// finalized into immutable sales records appended to a second file. The
// package owns the line codec, the entities and their status rules, the
// persistence layer, and the filter/sort/paginate/KPI engine the views
// consume. Rendering lives in the renderer package and the CLI in cmd.
package pos
