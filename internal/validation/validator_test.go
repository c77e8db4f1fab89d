package validation

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// ValidatorTestSuite defines the test suite for the request validator
type ValidatorTestSuite struct {
	suite.Suite
	validator *Validator
}

// SetupTest runs before each test
func (s *ValidatorTestSuite) SetupTest() {
	s.validator = NewValidator()
}

// TestValidatorTestSuite runs the test suite
func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

// TestGetValidator_Singleton tests that the package-level accessor reuses one instance
func (s *ValidatorTestSuite) TestGetValidator_Singleton() {
	first := GetValidator()
	second := GetValidator()

	s.NotNil(first)
	s.Same(first, second)
}

type amountPayload struct {
	Amount string `json:"amount" validate:"amount"`
}

// TestAmountRule tests the custom amount rule. Only parseability is checked
// here; a negative or oversized amount is well formed and gets dropped by the
// account operations instead of being rejected at the door.
func (s *ValidatorTestSuite) TestAmountRule() {
	testCases := []struct {
		name   string
		amount string
		valid  bool
	}{
		{name: "integer", amount: "100", valid: true},
		{name: "decimal", amount: "455.23", valid: true},
		{name: "negative", amount: "-306.5", valid: true},
		{name: "zero", amount: "0", valid: true},
		{name: "leading zeros", amount: "007", valid: true},
		{name: "empty", amount: "", valid: false},
		{name: "letters", amount: "abc", valid: false},
		{name: "mixed", amount: "12abc", valid: false},
		{name: "double dot", amount: "1.2.3", valid: false},
		{name: "lone sign", amount: "-", valid: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := s.validator.GetValidate().Struct(amountPayload{Amount: tc.amount})
			if tc.valid {
				s.NoError(err)
			} else {
				s.Error(err)
			}
		})
	}
}

type usernamePayload struct {
	Username string `json:"username" validate:"username"`
}

// TestUsernameRule tests the derived-initials username rule
func (s *ValidatorTestSuite) TestUsernameRule() {
	testCases := []struct {
		name     string
		username string
		valid    bool
	}{
		{name: "initials", username: "js", valid: true},
		{name: "single letter", username: "p", valid: true},
		{name: "three initials", username: "stw", valid: true},
		{name: "empty", username: "", valid: false},
		{name: "uppercase", username: "JS", valid: false},
		{name: "digits", username: "js1", valid: false},
		{name: "spaces", username: "j s", valid: false},
		{name: "punctuation", username: "j.s", valid: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := s.validator.GetValidate().Struct(usernamePayload{Username: tc.username})
			if tc.valid {
				s.NoError(err)
			} else {
				s.Error(err)
			}
		})
	}
}

type taggedPayload struct {
	RecipientName string `json:"to" validate:"required"`
}

// TestJSONTagNames tests that validation errors report json field names
func (s *ValidatorTestSuite) TestJSONTagNames() {
	err := s.validator.GetValidate().Struct(taggedPayload{})

	s.Error(err)
	s.Contains(err.Error(), "'to'")
	s.NotContains(err.Error(), "RecipientName'")
}
