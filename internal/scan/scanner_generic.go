//go:build !amd64

package scan

// Non-amd64 platforms get the scalar backend. The word-parallel trick in
// scanner_word.go is portable 64-bit arithmetic and would work here too,
// but without a cheap runtime signal (equivalent to x/sys/cpu's amd64
// feature bits) that word-at-a-time loads are actually cheaper than a
// byte loop on a given arch, we keep the guaranteed-safe default.
var currentBackend = scanScalar
