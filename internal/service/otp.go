package service

import (
	"math/rand"
	"strconv"
)

// generateOTP samples a 6-digit passcode uniformly from
// 100000–999999 inclusive.
func generateOTP() string {
	return strconv.Itoa(100000 + rand.Intn(900000))
}
