// Package sanitizer provides small string transforms for cleaning user input
// before it reaches mail headers, spreadsheets or logs.
//
// Transforms are plain func(string) string values and compose with Apply:
//
//	subject := sanitizer.Apply(in, sanitizer.RemoveNullBytes, sanitizer.SingleLine)
package sanitizer
