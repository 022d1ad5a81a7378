package response_models

type RangeResponse struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Default int `json:"default"`
}

// OptionsResponse lists every value the form accepts.
type OptionsResponse struct {
	Regions         []string      `json:"regions"`
	DefaultOrigin   string        `json:"default_origin"`
	Interests       []string      `json:"interests"`
	SpecialRequests []string      `json:"special_requests"`
	PartySize       RangeResponse `json:"party_size"`
	Duration        RangeResponse `json:"duration"`
}
