package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// GenerateAccountNumber returns a random 10-digit account number. The demo
// makes no uniqueness guarantee across accounts.
func GenerateAccountNumber() string {
	n, _ := rand.Int(rand.Reader, big.NewInt(10000000000))
	return fmt.Sprintf("%010d", n.Int64())
}

// GenerateRIB concatenates bank code (3 digits), branch code (5 digits), the
// account number left-padded to 14 digits and a 2-digit random check value.
// The check value is cosmetic, not a real mod-97 key.
func GenerateRIB(bankCode string, branchCode string, accountNumber string) string {
	padded := accountNumber
	if len(padded) < 14 {
		padded = strings.Repeat("0", 14-len(padded)) + padded
	}
	key, _ := rand.Int(rand.Reader, big.NewInt(100))
	return fmt.Sprintf("%s%s%s%02d", bankCode, branchCode, padded, key.Int64())
}

func generateCardNumber() string {
	n1, _ := rand.Int(rand.Reader, big.NewInt(900))
	n2, _ := rand.Int(rand.Reader, big.NewInt(10000))
	n3, _ := rand.Int(rand.Reader, big.NewInt(10000))
	n4, _ := rand.Int(rand.Reader, big.NewInt(10000))
	return fmt.Sprintf("4%03d%04d%04d%04d", n1.Int64()+100, n2.Int64(), n3.Int64(), n4.Int64())
}

// maskCardNumber keeps the first and last blocks of the 16-digit number.
func maskCardNumber(number string) string {
	if len(number) != 16 {
		return number
	}
	return number[:4] + " **** **** " + number[12:]
}
