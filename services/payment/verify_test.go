package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func signFor(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	const secret = "test-secret"
	good := signFor("order_1", "pay_1", secret)

	if !VerifySignature("order_1", "pay_1", good, secret) {
		t.Fatal("valid signature rejected")
	}

	// Any single flipped character must be rejected.
	for i := 0; i < len(good); i++ {
		mutated := []byte(good)
		if mutated[i] == 'a' {
			mutated[i] = 'b'
		} else {
			mutated[i] = 'a'
		}
		if VerifySignature("order_1", "pay_1", string(mutated), secret) {
			t.Fatalf("mutated signature accepted at position %d", i)
		}
	}
}

func TestVerifySignatureBindsIdentifiers(t *testing.T) {
	const secret = "test-secret"
	good := signFor("order_1", "pay_1", secret)

	if VerifySignature("order_2", "pay_1", good, secret) {
		t.Error("signature accepted for a different order")
	}
	if VerifySignature("order_1", "pay_2", good, secret) {
		t.Error("signature accepted for a different payment")
	}
	if VerifySignature("order_1", "pay_1", good, "other-secret") {
		t.Error("signature accepted under a different secret")
	}
	if VerifySignature("order_1", "pay_1", "", secret) {
		t.Error("empty signature accepted")
	}
}
