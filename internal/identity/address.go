package identity

import (
	"encoding/base32"

	"github.com/go-playground/validator/v10"
)

const (
	addressLength = 56
	// versionAccountID is the strkey version byte of public account keys
	// (6 << 3), which encodes to a leading 'G'.
	versionAccountID byte = 6 << 3
)

var strkeyEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// ValidAddress reports whether s is a well-formed Stellar public account
// address: base32 version byte, 32 byte key and a CRC16-XModem checksum.
func ValidAddress(s string) bool {
	if len(s) != addressLength || s[0] != 'G' {
		return false
	}
	raw, err := strkeyEncoding.DecodeString(s)
	if err != nil || len(raw) != 35 {
		return false
	}
	if raw[0] != versionAccountID {
		return false
	}
	sum := crc16(raw[:33])
	return raw[33] == byte(sum) && raw[34] == byte(sum>>8)
}

// RegisterValidation adds the "stellar_address" tag to v.
func RegisterValidation(v *validator.Validate) error {
	return v.RegisterValidation("stellar_address", func(fl validator.FieldLevel) bool {
		return ValidAddress(fl.Field().String())
	})
}

func crc16(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
