package domain

// Viewer describes who is looking at an ad. The HTTP layer builds it from
// the request: Wallet comes from the widget when the user connected one,
// IPAddress and UserAgent are used to derive an anonymous fingerprint
// otherwise.
type Viewer struct {
	Wallet    string
	IPAddress string
	UserAgent string
}
