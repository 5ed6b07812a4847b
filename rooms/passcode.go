package rooms

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// Upper-case letters and digits without 0/O and 1/I, easy to read aloud in class.
	passcodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	PasscodeLength   = 8
)

// GeneratePasscode returns a random room passcode.
func GeneratePasscode() (string, error) {
	return gonanoid.Generate(passcodeAlphabet, PasscodeLength)
}
