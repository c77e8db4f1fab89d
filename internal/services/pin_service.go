package services

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPIN     = errors.New("invalid PIN")
	ErrPINNotNumeric  = errors.New("PIN must be numeric")
	ErrPINHashingFail = errors.New("failed to hash PIN")
)

type pinService struct {
	cost int
}

// NewPINService returns a bcrypt-backed PIN service. Cost outside the bcrypt
// range falls back to the library default.
func NewPINService(cost int) PINServiceInterface {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &pinService{cost: cost}
}

func (s *pinService) HashPIN(pin string) (string, error) {
	normalized, err := normalizePIN(pin)
	if err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(normalized), s.cost)
	if err != nil {
		return "", ErrPINHashingFail
	}

	return string(hash), nil
}

func (s *pinService) ComparePIN(hash, pin string) error {
	normalized, err := normalizePIN(pin)
	if err != nil {
		return ErrInvalidPIN
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(normalized)); err != nil {
		return ErrInvalidPIN
	}

	return nil
}

// normalizePIN strips leading zeros and surrounding whitespace so "1111",
// " 1111" and "01111" all compare as the number 1111. PINs are stored and
// compared in this canonical numeric form.
func normalizePIN(pin string) (string, error) {
	n, err := strconv.Atoi(strings.TrimSpace(pin))
	if err != nil {
		return "", ErrPINNotNumeric
	}
	return strconv.Itoa(n), nil
}
