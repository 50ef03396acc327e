package models

import (
	"regexp"
	"strings"

	"stayhub/apperrors"
)

const (
	MaxNameLen  = 50
	MaxTitleLen = 100
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Field validators. Each is called at construction with every field and
// again at partial update with only the supplied fields; the first failure
// aborts the whole operation.

func ValidateName(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.Validation(field, "must not be empty")
	}
	if len(value) > MaxNameLen {
		return apperrors.Validation(field, "must be at most 50 characters")
	}
	return nil
}

func ValidateEmail(value string) error {
	if !emailRegex.MatchString(value) {
		return apperrors.Validation("email", "invalid email format")
	}
	return nil
}

func ValidateTitle(value string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.Validation("title", "must not be empty")
	}
	if len(value) > MaxTitleLen {
		return apperrors.Validation("title", "must be at most 100 characters")
	}
	return nil
}

func ValidatePrice(value float64) error {
	if value < 0 {
		return apperrors.Validation("price", "must not be negative")
	}
	return nil
}

func ValidateLatitude(value float64) error {
	if value < -90.0 || value > 90.0 {
		return apperrors.Validation("latitude", "must be between -90.0 and 90.0")
	}
	return nil
}

func ValidateLongitude(value float64) error {
	if value < -180.0 || value > 180.0 {
		return apperrors.Validation("longitude", "must be between -180.0 and 180.0")
	}
	return nil
}

func ValidateReviewText(value string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.Validation("text", "must not be empty")
	}
	return nil
}

func ValidateRating(value int) error {
	if value < 1 || value > 5 {
		return apperrors.Validation("rating", "must be between 1 and 5")
	}
	return nil
}
