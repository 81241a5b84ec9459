package utils

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strconv"
)

// GenerateSignature returns base64(hex(sha256(message))) where message is the
// plain concatenation of the arguments. The password is used exactly as the
// partner sent it, still base64 encoded.
func GenerateSignature(sigTimestamp, partnerKey, partnerRefNo string, totalAmount int64, partnerPassword string) string {
	message := sigTimestamp + partnerKey + partnerRefNo + strconv.FormatInt(totalAmount, 10) + partnerPassword

	hash := sha256.Sum256([]byte(message))
	hexString := hex.EncodeToString(hash[:])

	return base64.StdEncoding.EncodeToString([]byte(hexString))
}
