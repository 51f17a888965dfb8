// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ids provides identifier generation for records and wizard sessions.

# Record IDs

Random hex IDs for database rows:

	id, err := ids.GenerateID(ids.RecordIDBytes) // 24 hex characters

Orders use OrderIDBytes (32 hex characters). OrderNumber turns an order ID
into the short reference shown in lists:

	ids.OrderNumber("3f9a12c4deadbeef") // "FD-3F9A12C4"

# Session IDs

Each opened wizard gets a UUID:

	sid := ids.NewSessionID()

The identity is what late submission results are checked against: a result
that arrives for a session that has been closed is dropped.
ParseSessionID validates and lowercases an ID taken from a request path.
*/
package ids
