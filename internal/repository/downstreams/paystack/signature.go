package paystack

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

// SignatureHeader is the header the gateway uses to sign webhook deliveries.
const SignatureHeader = "x-paystack-signature"

// ValidWebhookSignature checks the signature of an inbound webhook request.
// The gateway signs the raw request body with HMAC-SHA512 keyed by the
// account secret and sends the hex digest in the signature header. The
// digest algorithm is fixed, a mismatch means misconfiguration.
func ValidWebhookSignature(rawBody []byte, secret string, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
