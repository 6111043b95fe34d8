// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package loader parses raw election-results tables into normalized records.

# Reading

Read dispatches on file extension (.csv or .xlsx) and returns records,
recoverable warnings, and a fatal error:

	records, warnings, err := loader.Read("election.csv")

# Column Contract

Headers are matched case-insensitively after trimming:

  - Prabhag (required): unit id, coerced to trimmed string
  - Election_type (required): category, trimmed string
  - Name (required): candidate name
  - Party (optional): defaults to "Independent" when blank or absent
  - Votes (required header): coerced to a non-negative integer,
    invalid or missing values default to 0 with a warning

# Failure Semantics

All duck-typed coercion lives at this boundary; downstream packages only see
strictly typed VoteRecord values. Row-level problems (missing unit/name,
unparseable votes) produce warnings and never abort the load. A missing file
or missing required headers is a load error; the caller (store) degrades to
an empty table and surfaces the diagnostic.
*/
package loader
