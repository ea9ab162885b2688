package main

import (
	"crypto/rand"
	"fmt"
	"log"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_"

// randomString draws n characters from charset
func randomString(n int) string {
	randomBytes := make([]byte, n)
	if _, err := rand.Read(randomBytes); err != nil {
		log.Fatal("Failed to generate random key:", err)
	}

	key := make([]byte, n)
	for i := range key {
		key[i] = charset[int(randomBytes[i])%len(charset)]
	}
	return string(key)
}

func main() {
	// PASETO v4 local needs exactly 32 bytes; the JWT secret only needs at least 32
	pasetoKey := randomString(32)
	jwtSecret := randomString(64)

	fmt.Println("Generated token signing keys")
	fmt.Println("================================================")
	fmt.Println("\nAdd these to your .env file:")
	fmt.Printf("JWT_SECRET=%s\n", jwtSecret)
	fmt.Printf("PASETO_SYMMETRIC_KEY=%s\n", pasetoKey)
	fmt.Println("\nSet TOKEN_FORMAT=jwt or TOKEN_FORMAT=paseto to choose which one signs tokens.")
}
