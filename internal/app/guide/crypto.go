package guide

import (
	"encoding/hex"
	"strings"

	"github.com/forgoer/openssl"
)

// TripleDESCrypto encrypts credential values stored in the config file.
type TripleDESCrypto struct {
	key []byte
}

// NewTripleDESCrypto pads or trims the key to the 24 bytes 3DES requires.
func NewTripleDESCrypto(key string) *TripleDESCrypto {
	if len(key) < 24 {
		key += strings.Repeat("0", 24-len(key))
	} else if len(key) > 24 {
		key = key[:24]
	}

	return &TripleDESCrypto{
		key: []byte(key),
	}
}

// ECBEncrypt returns the ciphertext as a hex string.
func (c *TripleDESCrypto) ECBEncrypt(plainText string) (string, error) {
	encrypted, err := openssl.Des3ECBEncrypt([]byte(plainText), c.key, openssl.PKCS7_PADDING)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(encrypted), nil
}

// ECBDecrypt takes a hex string and returns the plaintext.
func (c *TripleDESCrypto) ECBDecrypt(cipherText string) (string, error) {
	data, err := hex.DecodeString(cipherText)
	if err != nil {
		return "", err
	}

	decrypted, err := openssl.Des3ECBDecrypt(data, c.key, openssl.PKCS7_PADDING)
	if err != nil {
		return "", err
	}

	return string(decrypted), nil
}
