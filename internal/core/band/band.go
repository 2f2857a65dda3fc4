// Package band discretizes continuous exposure amounts into the fixed
// categories the explorer filters and cross-tabs on.
//
// Thresholds are inclusive upper bounds evaluated in order, first match
// wins. A missing input yields no band (ok=false) rather than falling into
// the top bucket.
package band

// Limit band labels, in threshold order
const (
	Limit1M   = "$1M"
	Limit2M   = "$2M"
	Limit3M   = "$3M"
	Limit5M   = "$5M"
	Limit10Mp = "$10M+"
)

// AttachPrimary labels a zero attachment point
const AttachPrimary = "$0 (Primary)"

// LimitBands lists the limit band labels in display order
func LimitBands() []string {
	return []string{Limit1M, Limit2M, Limit3M, Limit5M, Limit10Mp}
}

// AttachmentBands lists the attachment band labels in display order
func AttachmentBands() []string {
	return []string{AttachPrimary, Limit1M, Limit2M, Limit5M, Limit10Mp}
}

// Limit buckets a per-occurrence limit amount
func Limit(x float64) string {
	switch {
	case x <= 1_000_000:
		return Limit1M
	case x <= 2_000_000:
		return Limit2M
	case x <= 3_000_000:
		return Limit3M
	case x <= 5_000_000:
		return Limit5M
	default:
		return Limit10Mp
	}
}

// Attachment buckets an attachment point; zero is its own primary bucket
func Attachment(x float64) string {
	switch {
	case x == 0:
		return AttachPrimary
	case x <= 1_000_000:
		return Limit1M
	case x <= 2_000_000:
		return Limit2M
	case x <= 5_000_000:
		return Limit5M
	default:
		return Limit10Mp
	}
}
