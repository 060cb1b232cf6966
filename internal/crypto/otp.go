package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// otpLength is the number of decimal digits in a reset code.
const otpLength = 6

// otpGenerator is the private implementation of [OTPGenerator].
type otpGenerator struct{}

// NewOTPGenerator constructs an [OTPGenerator] backed by the OS CSPRNG.
func NewOTPGenerator() OTPGenerator {
	return &otpGenerator{}
}

// Generate implements [OTPGenerator]. Each digit is drawn independently so
// leading zeros are as likely as any other digit.
func (g *otpGenerator) Generate() (string, error) {
	code := make([]byte, otpLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("generating one-time code: %w", err)
		}
		code[i] = byte('0' + n.Int64())
	}
	return string(code), nil
}
