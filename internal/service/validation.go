// File: internal/service/validation.go
package service

import (
	"errors"
	"regexp"
)

var (
	phoneRe       = regexp.MustCompile(`^\+7\d{10}$`)
	firstLetterRe = regexp.MustCompile(`^[a-zA-Z]`)
	uppercaseRe   = regexp.MustCompile(`[A-Z]`)
	specialRe     = regexp.MustCompile(`[$%&!:]`)
)

var (
	ErrPhoneFormat      = errors.New("phone: must start with +7 and contain 10 digits")
	ErrPasswordTooShort = errors.New("password: must be at least 8 characters long")
	ErrPasswordLetter   = errors.New("password: must start with a latin letter")
	ErrPasswordUpper    = errors.New("password: must contain at least one uppercase letter")
	ErrPasswordSpecial  = errors.New("password: must contain at least one special character ($%&!:)")
	ErrPasswordMismatch = errors.New("password_confirm: passwords do not match")
)

// ValidatePhone 檢查電話格式：+7 後接 10 位數字。
func ValidatePhone(phone string) error {
	if !phoneRe.MatchString(phone) {
		return ErrPhoneFormat
	}
	return nil
}

// ValidatePassword 逐條檢查密碼規則，回傳第一個不符合的欄位錯誤。
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}
	if !firstLetterRe.MatchString(password) {
		return ErrPasswordLetter
	}
	if !uppercaseRe.MatchString(password) {
		return ErrPasswordUpper
	}
	if !specialRe.MatchString(password) {
		return ErrPasswordSpecial
	}
	return nil
}

// ValidatePasswordConfirm 檢查密碼與確認欄位一致。
func ValidatePasswordConfirm(password, confirm string) error {
	if password != confirm {
		return ErrPasswordMismatch
	}
	return nil
}
