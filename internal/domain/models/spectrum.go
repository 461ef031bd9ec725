package models

// Signal is the discrete classification emitted by the cycle detector.
type Signal string

const (
	SignalBullish Signal = "bullish"
	SignalBearish Signal = "bearish"
	SignalNeutral Signal = "neutral"
)

// PricePoint is one daily close. Date is an ISO-8601 date string carried
// through from the data provider unchanged; it is never reparsed for
// business logic beyond ordering.
type PricePoint struct {
	Date  string  `json:"date"`
	Close float64 `json:"close"`
}

// SpectralComponent is one extracted frequency bin of a window.
type SpectralComponent struct {
	FreqIndex       int     `json:"freq_index"`
	PeriodDays      int     `json:"period_days"`
	Magnitude       float64 `json:"magnitude"`
	PhaseRad        float64 `json:"phase_rad"`
	PhaseDeg        float64 `json:"phase_deg"`
	Real            float64 `json:"real"`
	Imag            float64 `json:"imag"`
	ContributionPct float64 `json:"contribution_pct"`
}

// RollingBar is one point of the rolling output: actual close vs the
// reconstructed fair value for the same date.
type RollingBar struct {
	Date          string  `json:"date"`
	Price         float64 `json:"price"`
	Reconstructed float64 `json:"reconstructed"`
	AboveRecon    bool    `json:"aboveRecon"`
	Position      int     `json:"position"`
}

// RollingResult is the externally consumed result of a rolling spectrum
// computation. The component table comes from the last window only.
type RollingResult struct {
	RollingCurve      []RollingBar        `json:"rollingCurve"`
	ComplexComponents []SpectralComponent `json:"complexComponents"`
	CurrentSignal     Signal              `json:"currentSignal"`
	WindowSize        int                 `json:"windowSize"`
	NumFreqKept       int                 `json:"numFreqKept"`
	ThresholdPct      float64             `json:"thresholdPct"`
}

// TrendSnapshot carries a few indicator values alongside the spectrum for
// dashboard context. Not part of the core computation.
type TrendSnapshot struct {
	SMA20       float64 `json:"sma_20"`
	SMA50       float64 `json:"sma_50"`
	RSI14       float64 `json:"rsi_14"`
	LastClose   float64 `json:"last_close"`
	AboveSMA20  bool    `json:"above_sma_20"`
	AboveSMA50  bool    `json:"above_sma_50"`
	RSICategory string  `json:"rsi_category"` // oversold, neutral, overbought
}

// SpectrumReport is what the API returns: the rolling result plus the
// symbol it was computed for, the source that produced it and optional
// trend context.
type SpectrumReport struct {
	Symbol   string         `json:"symbol"`
	Source   string         `json:"source"` // remote, local or cache
	Result   *RollingResult `json:"result"`
	Snapshot *TrendSnapshot `json:"snapshot,omitempty"`
}
