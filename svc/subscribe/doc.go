// Package subscribe implements the blog's mailing-list signup endpoint.
//
// POST {"email": "..."} appends the address as one row to the configured
// Google spreadsheet range and answers 200 {"message":"Email appended successfully!"}.
// Invalid input is 400; missing spreadsheet credentials and API failures are
// 500 {"message":"An error occurred: <error>"}. There is no deduplication.
package subscribe
