// Package identity turns a viewer into the key used for reward cooldowns.
package identity

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"

	"stellar-ads/internal/core/domain"
	"stellar-ads/internal/core/port"
)

// Deriver resolves viewers to identities. Anonymous viewers are keyed by
// a salted BLAKE2b-256 digest of their IP address and user agent so the
// raw values never reach the ledger.
type Deriver struct {
	key []byte
}

// NewDeriver returns a Deriver keyed by salt. Any salt length is accepted.
func NewDeriver(salt string) *Deriver {
	sum := blake2b.Sum256([]byte(salt))
	return &Deriver{key: sum[:]}
}

// Resolve returns the wallet identity when the viewer supplied a wallet
// address and a fingerprint identity otherwise. A malformed wallet
// address is a validation error.
func (d *Deriver) Resolve(v domain.Viewer) (domain.Identity, error) {
	wallet := strings.TrimSpace(v.Wallet)
	if wallet != "" {
		if !ValidAddress(wallet) {
			return domain.Identity{}, port.NewValidationError("wallet", "invalid Stellar account address")
		}
		return domain.Identity{Value: wallet, Kind: domain.IdentityWallet}, nil
	}
	return domain.Identity{
		Value: d.Fingerprint(v.IPAddress, v.UserAgent),
		Kind:  domain.IdentityFingerprint,
	}, nil
}

// Fingerprint returns the hex digest of "ip|userAgent".
func (d *Deriver) Fingerprint(ip, userAgent string) string {
	h, err := blake2b.New256(d.key)
	if err != nil {
		// key is always 32 bytes
		panic(err)
	}
	h.Write([]byte(ip))
	h.Write([]byte{'|'})
	h.Write([]byte(userAgent))
	return hex.EncodeToString(h.Sum(nil))
}
