// Package analyze turns parsed command records into per-component
// health verdicts. Every analyzer is a pure function of its inputs:
// structured records are preferred, raw text is only consulted when
// the structured tier produced nothing.
package analyze

// Component status values. Interface health uses the mixed-case pair,
// routing protocols the upper-case set.
const (
	StatusGood          = "Good"
	StatusWarning       = "Warning"
	StatusOK            = "OK"
	StatusWarningUpper  = "WARNING"
	StatusCritical      = "CRITICAL"
	StatusUnknown       = "Unknown"
	StatusNotConfigured = "NOT_CONFIGURED"
)

// Thresholds are the tipping points for the component analyzers.
type Thresholds struct {
	CPUCriticalPercent     int `mapstructure:"cpu_critical_percent" yaml:"cpu_critical_percent"`
	MemoryCriticalPercent  int `mapstructure:"memory_critical_percent" yaml:"memory_critical_percent"`
	BGPFlapCount           int `mapstructure:"bgp_flap_count" yaml:"bgp_flap_count"`
	OSPFLSAFloodCount      int `mapstructure:"ospf_lsa_flood_count" yaml:"ospf_lsa_flood_count"`
	OSPFDeadTimeWarnSecond int `mapstructure:"ospf_dead_time_warn_seconds" yaml:"ospf_dead_time_warn_seconds"`
}

// DefaultThresholds returns the stock tipping points.
func DefaultThresholds() Thresholds {
	return Thresholds{
		CPUCriticalPercent:     70,
		MemoryCriticalPercent:  80,
		BGPFlapCount:           5,
		OSPFLSAFloodCount:      10000,
		OSPFDeadTimeWarnSecond: 10,
	}
}

// Analyzer evaluates component health against a set of thresholds.
type Analyzer struct {
	Thresholds Thresholds
}

// New returns an Analyzer with default thresholds.
func New() *Analyzer {
	return &Analyzer{Thresholds: DefaultThresholds()}
}

// NewWithThresholds returns an Analyzer using the given tipping points.
func NewWithThresholds(th Thresholds) *Analyzer {
	return &Analyzer{Thresholds: th}
}
