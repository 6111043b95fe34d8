// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package report composes filtered analysis output into paginated PDF reports.

# Composer

The Composer filters the table, orders the selected units naturally, and
emits one completed ReportPage at a time through a callback:

	c := report.NewComposer(renderer)
	sink := report.NewPDFSink(watermark)
	pages, err := c.ComposeResults(records, report.Filter{Units: units, Parties: parties}, sink.AddPage)

Two variants exist:

  - ComposeResults: one page per selected unit (vote distribution chart
    plus candidate summary table)
  - ComposeMargins: one page per distinct category across the filtered set
    (victory margin per unit, colored by winning party)

# Failure Semantics

A per-page rendering failure is caught, logged, and replaced with a textual
fallback page; one unit's failure never loses the other units' pages. Zero
emitted pages with a nil error means the filters matched nothing — a signal,
not an error; the caller decides whether that is user error.

The page-at-a-time callback doubles as the progress interface: callers see
each page as soon as it completes instead of blocking behind the whole batch,
and an error returned from the callback stops the batch between pages.

# PDF Sink

PDFSink implements the document sink contract: page break per emitted page,
centered title, in-memory PNG embedding (no temporary files), consistent
footer with page number and watermark. An empty watermark is valid and shows
the page number only.
*/
package report
