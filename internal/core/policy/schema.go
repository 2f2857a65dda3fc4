package policy

// Canonical column names. Raw inputs use the same headers; derived columns
// are recomputed on every load and never round-trip as source data.
const (
	ColPolicyNumber       = "Policy_Number"
	ColUY                 = "UY"
	ColLOB                = "LOB"
	ColSubLOB             = "Sub_LOB"
	ColPolicyType         = "Policy_Type"
	ColBusinessID         = "Business_ID"
	ColCedingCompany      = "Ceding_Company"
	ColMGA                = "MGA"
	ColVenue              = "Venue"
	ColEffectiveDate      = "Effective_Date"
	ColExpirationDate     = "Expiration_Date"
	ColAnnualPremium      = "Annual_Premium"
	ColLimitPerOccurrence = "Limit_Per_Occurrence"
	ColLimitAggregate     = "Limit_Aggregate"
	ColAttachmentPoint    = "Attachment_Point"
	ColShare              = "Share"

	// derived
	ColMGAFlag        = "MGA_Flag"
	ColLimitBand      = "Limit_Band"
	ColAttachmentBand = "Attachment_Band"
	ColExposedLimit   = "Exposed_Limit"
	ColInceptionMonth = "Inception_Month"
)

// NoMGASentinel is the literal a missing MGA defaults to before flagging
const NoMGASentinel = "N/A"

// Values of the MGA flag
const (
	FlagMGA   = "MGA"
	FlagNoMGA = "No MGA"
)

// PolicyTypePrimary is the Policy_Type value counted by the %Primary KPI
const PolicyTypePrimary = "Primary"

// DateColumns lists the columns coerced to calendar dates
func DateColumns() []string {
	return []string{ColEffectiveDate, ColExpirationDate}
}

// NumericColumns lists the columns coerced to floats (UY included: it is an
// integer year but rides the numeric cell kind)
func NumericColumns() []string {
	return []string{
		ColUY,
		ColAnnualPremium,
		ColLimitPerOccurrence,
		ColLimitAggregate,
		ColAttachmentPoint,
		ColShare,
	}
}

// SchemaColumns lists every source (non-derived) column in canonical order
func SchemaColumns() []string {
	return []string{
		ColPolicyNumber,
		ColUY,
		ColLOB,
		ColSubLOB,
		ColPolicyType,
		ColBusinessID,
		ColCedingCompany,
		ColMGA,
		ColVenue,
		ColEffectiveDate,
		ColExpirationDate,
		ColAnnualPremium,
		ColLimitPerOccurrence,
		ColLimitAggregate,
		ColAttachmentPoint,
		ColShare,
	}
}

// DerivedColumns lists the computed columns in append order
func DerivedColumns() []string {
	return []string{
		ColMGAFlag,
		ColInceptionMonth,
		ColLimitBand,
		ColAttachmentBand,
		ColExposedLimit,
	}
}

// CoreColumns is the structurally required set: without these there is no
// usable record identity at all
func CoreColumns() []string {
	return []string{ColPolicyNumber}
}

// FilterColumns lists the columns the explorer exposes as dropdown filters
func FilterColumns() []string {
	return []string{
		ColUY,
		ColLOB,
		ColSubLOB,
		ColPolicyType,
		ColBusinessID,
		ColCedingCompany,
		ColMGA,
		ColVenue,
		ColLimitBand,
		ColAttachmentBand,
	}
}

// Presence is the enumerated column-presence policy applied at load time
type Presence uint8

const (
	// RequireCore fails the load only when a core column is absent;
	// optional columns are guarded per-column downstream
	RequireCore Presence = iota

	// RequireFull fails the load unless every schema column is present
	RequireFull

	// Lenient fails only when the input shares no columns with the schema
	Lenient
)

// String names the presence policy for logs and config parsing
func (p Presence) String() string {
	switch p {
	case RequireFull:
		return "full"
	case Lenient:
		return "lenient"
	default:
		return "core"
	}
}

// ParsePresence maps a config string to a Presence, defaulting to core
func ParsePresence(s string) Presence {
	switch s {
	case "full":
		return RequireFull
	case "lenient":
		return Lenient
	default:
		return RequireCore
	}
}
