package guide

import "testing"

func TestTripleDESCryptoRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "short key gets padded", key: "secret", value: "ftp-password"},
		{name: "long key gets trimmed", key: "0123456789abcdef0123456789abcdef", value: "another one"},
		{name: "empty value", key: "secret", value: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			crypto := NewTripleDESCrypto(tt.key)

			encrypted, err := crypto.ECBEncrypt(tt.value)
			if err != nil {
				t.Fatalf("ECBEncrypt() error = %v", err)
			}
			if encrypted == tt.value {
				t.Fatal("ECBEncrypt() returned the plaintext")
			}

			decrypted, err := crypto.ECBDecrypt(encrypted)
			if err != nil {
				t.Fatalf("ECBDecrypt() error = %v", err)
			}
			if decrypted != tt.value {
				t.Errorf("ECBDecrypt() = %q, want %q", decrypted, tt.value)
			}
		})
	}
}

func TestTripleDESCryptoBadCiphertext(t *testing.T) {
	crypto := NewTripleDESCrypto("secret")
	if _, err := crypto.ECBDecrypt("not hex at all"); err == nil {
		t.Error("ECBDecrypt() with invalid hex input did not fail")
	}
}
