package utils

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost is the cost factor for bcrypt hashing
// 10 is recommended for production (takes ~100ms)
// 14 is very secure but slow (~1.5s)
const DefaultBcryptCost = 10

// dummyHash is compared against when a login names an unknown user so the
// response time does not reveal whether the account exists.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("pharmacy-pos-dummy-password"), DefaultBcryptCost)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultBcryptCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// BurnPasswordCheck performs a comparison that always fails
func BurnPasswordCheck(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
