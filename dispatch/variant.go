package dispatch

import (
	"strconv"
)

// Variant selects how the engine maps a pc to an instruction body.
type Variant int

//go:generate go tool stringer -linecomment -type=Variant
const (
	VARIANT_GENERIC    = Variant(0) // generic
	VARIANT_PC         = Variant(1) // pc
	VARIANT_TRANSITION = Variant(2) // transition
)

// Specialized returns true if the variant builds per-pc bodies.
func (v Variant) Specialized() bool {
	return v == VARIANT_PC || v == VARIANT_TRANSITION
}

// ParseVariant parses a variant by name, or by specialization level.
func ParseVariant(name string) (variant Variant, err error) {
	for _, variant = range []Variant{VARIANT_GENERIC, VARIANT_PC, VARIANT_TRANSITION} {
		if name == variant.String() || name == strconv.Itoa(int(variant)) {
			return
		}
	}

	variant = VARIANT_GENERIC
	err = ErrVariantInvalid
	return
}
