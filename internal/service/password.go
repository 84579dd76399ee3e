// File: internal/service/password.go
package service

import "golang.org/x/crypto/bcrypt"

// HashPassword 以 bcrypt 雜湊明文密碼。超過 72 bytes 會回傳錯誤。
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword 比對明文密碼與 bcrypt 雜湊，相符時回傳 nil。
func ComparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
