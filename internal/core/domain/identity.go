package domain

// IdentityKind tells verified wallet identities apart from anonymous
// fingerprints. Fingerprints are throttled with a longer cooldown.
type IdentityKind string

const (
	IdentityWallet      IdentityKind = "wallet"
	IdentityFingerprint IdentityKind = "fingerprint"
)

// Identity is the cooldown key of a viewer.
type Identity struct {
	Value string
	Kind  IdentityKind
}

// Anonymous reports whether the identity has no payout wallet.
func (i Identity) Anonymous() bool {
	return i.Kind != IdentityWallet
}

// Short returns a log-friendly prefix of the identity value.
func (i Identity) Short() string {
	if len(i.Value) <= 8 {
		return i.Value
	}
	return i.Value[:8]
}
