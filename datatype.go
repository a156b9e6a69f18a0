package rdfxsd

import "fmt"

// Type is a primitive XSD datatype recognized by the validators.
type Type uint8

const (
	TypeUnknown Type = iota
	TypeString
	TypeBoolean
	TypeInteger
	TypeDouble
	TypeFloat
	TypeDecimal
	TypeDateTime
)

const (
	firstType = TypeString
	lastType  = TypeDateTime
)

var typeNames = [...]string{
	TypeUnknown:  "unknown",
	TypeString:   "string",
	TypeBoolean:  "boolean",
	TypeInteger:  "integer",
	TypeDouble:   "double",
	TypeFloat:    "float",
	TypeDecimal:  "decimal",
	TypeDateTime: "dateTime",
}

// String returns the XSD local name of the datatype.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// Known reports whether t is one of the supported primitives.
func (t Type) Known() bool {
	return t >= firstType && t <= lastType
}

// ParseType returns the datatype with the given XSD local name. Names are
// case-sensitive, so "datetime" is not "dateTime".
func ParseType(name string) (Type, error) {
	for t := firstType; t <= lastType; t++ {
		if t.String() == name {
			return t, nil
		}
	}
	return TypeUnknown, fmt.Errorf("xsd:%s is not a supported datatype", name)
}

// Types lists the supported datatypes in registry order.
func Types() []Type {
	types := make([]Type, 0, lastType-firstType+1)
	for t := firstType; t <= lastType; t++ {
		types = append(types, t)
	}
	return types
}
