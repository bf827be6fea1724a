package typegen

// Variant is one generated representation of a schema type.
type Variant struct {
	TypeName   string
	Identifier string
}

// variantCache maps schema type names to their variants in creation order.
type variantCache struct {
	variants map[string][]Variant
}

func newVariantCache() *variantCache {
	return &variantCache{variants: map[string][]Variant{}}
}

// list returns a copy of the variants of typeName.
func (vc *variantCache) list(typeName string) []Variant {
	vs := vc.variants[typeName]
	out := make([]Variant, len(vs))
	copy(out, vs)
	return out
}

// canonical returns the first variant created for typeName.
func (vc *variantCache) canonical(typeName string) (Variant, bool) {
	vs := vc.variants[typeName]
	if len(vs) == 0 {
		return Variant{}, false
	}
	return vs[0], true
}

func (vc *variantCache) add(typeName, identifier string) Variant {
	v := Variant{TypeName: typeName, Identifier: identifier}
	vc.variants[typeName] = append(vc.variants[typeName], v)
	return v
}

func (vc *variantCache) len(typeName string) int {
	return len(vc.variants[typeName])
}
