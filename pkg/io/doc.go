// Package io reads and writes product lists.
//
// # Formats
//
// Three file formats are supported, chosen by file extension:
//
// JSON (.json): either a bare array or an object with a "products" array.
//
//	[
//	  {"id": "p1", "name": "Espresso", "code": "ESP-1", "base_price": 4.5, "sale_price": 3.9},
//	  {"id": "p2", "name": "Lungo", "code": "LUN-2", "base_price": 4.0, "sale_price": 4.0, "copies": 2}
//	]
//
// TOML (.toml): a [[products]] array of tables.
//
//	[[products]]
//	id = "p1"
//	name = "Espresso"
//	code = "ESP-1"
//	base_price = 4.5
//	sale_price = 3.9
//
// CSV (.csv): a header row naming the columns, in any order. Recognised
// columns are id, name, code, base_price, sale_price, brand_logo and copies;
// only name is required.
//
// # Import and Export
//
// [Import] and [Export] work on file paths; the Read* and Write* functions
// work on streams. Imported products without an ID are given a fresh one, and
// the list is validated (see catalog.ValidateAll) before it is returned.
package io
