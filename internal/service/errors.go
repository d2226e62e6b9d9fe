package service

import "errors"

var (
	ErrInvalidAmount    = errors.New("amount_in_inr must be a positive number")
	ErrUserNotFound     = errors.New("user not found")
	ErrPurchaseNotFound = errors.New("purchase not found")
)
