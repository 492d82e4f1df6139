//go:build amd64 && nocpuid

package scan

// Built with -tags nocpuid: skip runtime feature detection entirely and
// always take the portable scalar path. Useful on hardware where the
// CPUID-based dispatch in scanner_amd64.go is untrustworthy (some
// hypervisors mask or lie about leaf bits).
var currentBackend = scanScalar
