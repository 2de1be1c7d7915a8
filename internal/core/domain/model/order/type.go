package order

import "strings"

// Type classifies whether an order goes through the driver delivery lifecycle.
type Type int

const (
	TypeUnspecified Type = iota
	TypeDelivery
	TypePickup
)

func (t Type) String() string {
	switch t {
	case TypeDelivery:
		return "delivery"
	case TypePickup:
		return "pickup"
	default:
		return "unspecified"
	}
}

// ClassifyType normalizes the stored type string (lower-cased, non-letters stripped)
// so that "Pick-Up", "PICKUP" and "pick up" all classify as pickup. An empty type
// falls back to the presence of an address record.
func ClassifyType(raw string, hasAddress bool) Type {
	normalized := NormalizeType(raw)
	switch {
	case normalized == "pickup":
		return TypePickup
	case normalized != "":
		return TypeDelivery
	case hasAddress:
		return TypeDelivery
	default:
		return TypeUnspecified
	}
}

func NormalizeType(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(raw) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
