// Package utils holds small conversions shared by the HTTP handlers and the data
// providers: lenient parsing of query parameters and the case-insensitive match
// used by list filters.
package utils
