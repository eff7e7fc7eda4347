package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// Compute returns the base64-encoded HMAC-SHA256 of body keyed by secret.
// This is the digest format Shopify puts in X-Shopify-Hmac-Sha256.
func Compute(body []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(body)
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// Verify checks the claimed header digest against the raw request body.
// The body must be the exact bytes received on the wire; re-serialized JSON
// would accept forged payloads whose formatting differs from the original.
// Comparison is plain equality, matching the upstream behavior.
func Verify(header string, body []byte, secret string) bool {
	if header == "" {
		return false
	}
	return Compute(body, secret) == header
}
