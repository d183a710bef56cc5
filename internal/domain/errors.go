package domain

import "errors"

var ErrRecordNotFound = errors.New("Record not found")
var ErrSessionNotFound = errors.New("Session not found")
var ErrInsufficientBalance = errors.New("Insufficient balance")
var ErrDailyLimitExceeded = errors.New("Daily limit exceeded")
var ErrCardBlocked = errors.New("Card blocked")
var ErrBeneficiaryBlocked = errors.New("Beneficiary blocked")
var ErrDuplicateFavorite = errors.New("Favorite phone number already exists")
var ErrLimitOutOfRange = errors.New("Daily limit out of allowed range")
