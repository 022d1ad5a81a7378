package services

import (
	"fmt"

	"travelplan/internal/models/request_models"
	"travelplan/pkg/utils"
)

// Validate checks the two regions and that at least one interest was selected.
func Validate(origin, destination string, interests []string) error {
	if !IsPrefecture(origin) {
		return fmt.Errorf("%w: origin %q", utils.ErrInvalidRegion, origin)
	}
	if !IsPrefecture(destination) {
		return fmt.Errorf("%w: destination %q", utils.ErrInvalidRegion, destination)
	}
	if len(interests) == 0 {
		return utils.ErrNoInterestsSelected
	}
	return nil
}

// ValidateTravelRequest runs Validate and then enforces the closed interest and special-request
// sets plus the [1,10] bounds on party size and duration. Interests form a set, so a repeated
// tag is rejected.
func ValidateTravelRequest(req request_models.TravelRequest) error {
	if err := Validate(req.Origin, req.Destination, req.Interests); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(req.Interests))
	for _, interest := range req.Interests {
		if !IsInterestTag(interest) {
			return fmt.Errorf("%w: %q", utils.ErrInvalidInterest, interest)
		}
		if _, dup := seen[interest]; dup {
			return fmt.Errorf("%w: %q selected twice", utils.ErrInvalidInterest, interest)
		}
		seen[interest] = struct{}{}
	}
	if req.PartySize < MinPartySize || req.PartySize > MaxPartySize {
		return fmt.Errorf("%w: got %d", utils.ErrInvalidPartySize, req.PartySize)
	}
	if req.Duration < MinDuration || req.Duration > MaxDuration {
		return fmt.Errorf("%w: got %d", utils.ErrInvalidDuration, req.Duration)
	}
	if !IsSpecialRequest(req.SpecialRequest) {
		return fmt.Errorf("%w: %q", utils.ErrInvalidSpecialRequest, req.SpecialRequest)
	}
	return nil
}
