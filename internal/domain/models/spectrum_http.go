package models

// Requests for spectrum HTTP endpoints. Defined in domain for consistency and reuse.

type SpectrumRequest struct {
	Symbol    string  `query:"symbol" json:"symbol" validate:"required"`
	Window    int     `query:"window" json:"window" default:"256" validate:"gte=8,lte=4096"`
	NumFreq   int     `query:"num_freq" json:"num_freq" default:"8" validate:"gte=1,lte=64"`
	Bars      int     `query:"bars" json:"bars" default:"60" validate:"gte=1,lte=1000"`
	Threshold float64 `query:"threshold" json:"threshold" default:"0.002" validate:"gte=0,lte=0.5"`
}

type ComponentsRequest struct {
	Symbol  string `query:"symbol" json:"symbol" validate:"required"`
	Window  int    `query:"window" json:"window" default:"256" validate:"gte=8,lte=4096"`
	NumFreq int    `query:"num_freq" json:"num_freq" default:"8" validate:"gte=1,lte=64"`
}
