package domain

import (
	"fmt"
	"strings"
	"time"
)

type TelecomOperator string

const (
	TelecomOperatorInwi   TelecomOperator = "inwi"
	TelecomOperatorIAM    TelecomOperator = "IAM"
	TelecomOperatorOrange TelecomOperator = "Orange"
)

func ParseTelecomOperator(value string) (TelecomOperator, error) {
	switch trimmed := strings.TrimSpace(value); {
	case strings.EqualFold(trimmed, string(TelecomOperatorInwi)):
		return TelecomOperatorInwi, nil
	case strings.EqualFold(trimmed, string(TelecomOperatorIAM)):
		return TelecomOperatorIAM, nil
	case strings.EqualFold(trimmed, string(TelecomOperatorOrange)):
		return TelecomOperatorOrange, nil
	default:
		return "", fmt.Errorf("unknown telecom operator %q", value)
	}
}

// TelecomFavorite phone numbers are unique within one session.
type TelecomFavorite struct {
	ID          string
	Operator    TelecomOperator
	PhoneNumber string
	Label       string
	CreatedAt   time.Time
}
