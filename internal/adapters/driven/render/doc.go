// Package render turns unit tables into Go source.
//
// The output declares one zero-size marker type per unit, embedding the
// table's measure tag, plus compile-time constraint checks and the
// package's Units descriptor registry. It is gofmt-clean and
// byte-for-byte deterministic, so regenerating an unchanged table is a
// no-op.
package render
