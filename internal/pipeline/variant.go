package pipeline

import "fmt"

// Flags are the four feature switches consumed by the pipeline-assembly
// routine. Their meaning belongs to the routine; this package only carries them.
type Flags struct {
	UseData        bool
	UseDataPlusAOD bool
	FeatureB       bool
	FeatureC       bool
}

// Variant names a fixed, build-time combination of Flags. Only the
// combinations listed here can be requested, which keeps invalid flag sets
// out of the assembly call.
type Variant int

const (
	// VariantUnknown is the zero value and is never a valid variant.
	VariantUnknown Variant = iota
	// VariantDataAOD is the data-on-AOD production variant.
	VariantDataAOD
)

var variantFlags = map[Variant]Flags{
	VariantDataAOD: {UseData: false, UseDataPlusAOD: true, FeatureB: true, FeatureC: false},
}

var variantNames = map[Variant]string{
	VariantDataAOD: "data-aod",
}

// Flags returns the flag combination bound to the variant. The zero Flags
// value is returned for unknown variants.
func (v Variant) Flags() Flags {
	return variantFlags[v]
}

// Valid reports whether v is one of the declared variants.
func (v Variant) Valid() bool {
	_, ok := variantFlags[v]
	return ok
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// VariantOf returns the variant whose flags equal f, or VariantUnknown.
func VariantOf(f Flags) Variant {
	for v, vf := range variantFlags {
		if vf == f {
			return v
		}
	}
	return VariantUnknown
}
