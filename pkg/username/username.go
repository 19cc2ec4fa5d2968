// Package username generates login usernames and temporary passwords for
// newly created employee accounts.
package username

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]`)

// Generate builds a username from an employee's full name and number:
// first initial + last name + employee number, lowercased, stripped to
// [a-z0-9]. Example: "John Doe" + "1234" -> "jdoe1234". Falls back to
// "user<number>" when the name is empty.
func Generate(name, employeeNumber string) string {
	if strings.TrimSpace(name) == "" {
		return "user" + employeeNumber
	}

	parts := strings.Fields(strings.TrimSpace(name))
	// Slice by rune so a multi-byte initial is not split into invalid bytes
	first := []rune(parts[0])
	var firstInitial, lastName string
	if len(parts) == 1 {
		firstInitial = string(first[0])
		lastName = string(first[1:])
	} else {
		firstInitial = string(first[0])
		lastName = parts[len(parts)-1]
	}

	return nonAlnum.ReplaceAllString(strings.ToLower(firstInitial+lastName+employeeNumber), "")
}

const passwordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789@#$"

// TempPassword returns a random temporary password of the given length,
// drawn from an alphabet without look-alike characters.
func TempPassword(length int) string {
	if length < 8 {
		length = 8
	}
	b := make([]byte, length)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			panic(err)
		}
		b[i] = passwordAlphabet[n.Int64()]
	}
	return string(b)
}
