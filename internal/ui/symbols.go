package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Check passed / device healthy
	SymbolFail    = "✗" // Check failed / device unreachable
	SymbolWarn    = "⚠" // Advisory finding
	SymbolInfo    = "ℹ" // Informational (e.g. protocol not configured)
)
