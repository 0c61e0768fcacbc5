// Package generator produces random passwords for reset flows using
// crypto/rand. Generated passwords always satisfy the policy they were asked
// for: minimum length, mixed case, a digit, and a non-alphanumeric character
// when the policy demands one.
package generator

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()-_=+[]{};:,.?"

	// MaxLength guards against absurd policy values.
	MaxLength = 128
)

var ErrLengthTooLong = errors.New("password length must be at most 128")

// Generate creates a cryptographically secure random password of the given
// length. It satisfies the password.Generator contract.
func Generate(length int, requireNonAlphanumeric bool) (string, error) {
	if length > MaxLength {
		return "", ErrLengthTooLong
	}

	requiredSets := []string{uppercaseChars, lowercaseChars, numberChars}
	pool := uppercaseChars + lowercaseChars + numberChars
	if requireNonAlphanumeric {
		requiredSets = append(requiredSets, symbolChars)
		pool += symbolChars
	}
	if length < len(requiredSets) {
		length = len(requiredSets)
	}

	result := make([]byte, length)

	// Guarantee at least one character from each required set.
	for i, charset := range requiredSets {
		ch, err := randChar(charset)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	for i := len(requiredSets); i < length; i++ {
		ch, err := randChar(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	if err := secureShuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// randChar picks a random character from charset using crypto/rand.
func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}

// secureShuffle performs a Fisher-Yates shuffle using crypto/rand.
func secureShuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return err
		}
		data[i], data[j.Int64()] = data[j.Int64()], data[i]
	}
	return nil
}
