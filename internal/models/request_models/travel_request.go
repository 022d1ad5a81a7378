package request_models

// TravelRequest carries the six travel preferences collected from the form or the JSON API.
type TravelRequest struct {
	Origin         string   `json:"origin" form:"origin"`
	Destination    string   `json:"destination" form:"destination"`
	PartySize      int      `json:"party_size" form:"party_size"`
	Interests      []string `json:"interests" form:"interests"`
	Duration       int      `json:"duration" form:"duration"`
	SpecialRequest string   `json:"special_request" form:"special_request"`
}
