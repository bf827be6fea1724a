package fieldset

import "github.com/llehouerou/go-graphql-typegen/pkg/typeref"

// Layout is what Generated needs to know of a generated shape.
type Layout struct {
	Properties []typeref.Property
	// Members maps each concrete type of an abstract shape to the
	// identifier of its member shape.
	Members    map[string]string
}

// Lookup returns the layout generated under an identifier.
type Lookup func(identifier string) (Layout, bool)

// Generated returns the field paths of an already-generated property
// layout. Properties whose type is a generated composite, directly or as
// a sequence element, are expanded under the extended path, and the member
// shapes of an abstract composite under a member segment per concrete
// type. Primitives, enums and scalars are leaves.
func Generated(props []typeref.Property, lookup Lookup) Set {
	set := Set{}
	generated(set, "", props, lookup, map[string]bool{})
	return set
}

func generated(
	set Set,
	path string,
	props []typeref.Property,
	lookup Lookup,
	visiting map[string]bool,
) {
	for _, prop := range props {
		p := Join(path, prop.Name)
		set.Add(p)
		if !prop.Type.IsComposite() || lookup == nil {
			continue
		}
		id := prop.Type.Innermost().Name
		if visiting[id] {
			continue
		}
		nested, ok := lookup(id)
		if !ok {
			continue
		}
		visiting[id] = true
		generated(set, p, nested.Properties, lookup, visiting)
		for typeName, memberID := range nested.Members {
			member, ok := lookup(memberID)
			if !ok || visiting[memberID] {
				continue
			}
			visiting[memberID] = true
			generated(set, Join(p, MemberSegment(typeName)), member.Properties, lookup, visiting)
			delete(visiting, memberID)
		}
		delete(visiting, id)
	}
}
