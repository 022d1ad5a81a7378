package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorStatus(t *testing.T) {
	testCases := []struct {
		name            string
		err             error
		expectedCode    int
		expectedMessage string
	}{
		{"No_Interests", ErrNoInterestsSelected, http.StatusBadRequest, "興味の対象を少なくとも1つ選択してください。"},
		{"Wrapped_Region", fmt.Errorf("%w: %q", ErrInvalidRegion, "Atlantis"), http.StatusBadRequest, "無効な都道府県が選択されました。"},
		{"Party_Size", ErrInvalidPartySize, http.StatusBadRequest, "人数は1から10の間で選択してください。"},
		{"Duration", ErrInvalidDuration, http.StatusBadRequest, "滞在日数は1から10の間で選択してください。"},
		{"Special_Request", ErrInvalidSpecialRequest, http.StatusBadRequest, "無効な特別リクエストが選択されました。"},
		{"Generation", fmt.Errorf("%w: quota", ErrGeneration), http.StatusBadGateway, "Travel plan generation failed"},
		{"Page", ErrInvalidPage, http.StatusBadRequest, "Page must be greater than 0"},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, message := ErrorStatus(tc.err)
			assert.Equal(t, tc.expectedCode, code)
			assert.Equal(t, tc.expectedMessage, message)
		})
	}
}

func TestIsInputError(t *testing.T) {
	assert.True(t, IsInputError(fmt.Errorf("wrapped: %w", ErrInvalidInterest)))
	assert.False(t, IsInputError(ErrGeneration))
	assert.False(t, IsInputError(ErrLogWrite))
}
