/*
File    : sugar/builtins/defs.go
Package : builtins

The five built-ins spec.md §6 names (print_string, print_i32,
read_char, read_i32, panic) callable as if they were pub fn
declarations. Defs lets the parser pre-register a function shell for
each so ordinary call resolution (accessor.Function lookup) picks them
up with no special-casing in the grammar; Tag, stashed in that shell's
Body field, is what eval recognizes to route the call here instead of
into a user function body.
*/
package builtins

import (
	"github.com/sugarlang/sugar/accessor"
	"github.com/sugarlang/sugar/types"
)

// Tag names one built-in. Stored as accessor.Function.Body (declared
// `any` to avoid an accessor<->ast import cycle) for the user-defined
// case; a Tag value there instead means "dispatch to Call".
type Tag string

const (
	PrintString Tag = "print_string"
	PrintI32    Tag = "print_i32"
	ReadChar    Tag = "read_char"
	ReadI32     Tag = "read_i32"
	Panic       Tag = "panic"
)

func (t Tag) Name() string { return string(t) }

// readResult is the {value, success} anon record read_i32 returns.
func readResult(valueType types.ExprType) types.ExprType {
	return types.ExprType{Tag: types.AnonStruct, AnonFields: []types.AnonField{
		{Name: "value", Type: valueType},
		{Name: "success", Type: types.NewPrimitive(types.Bool)},
	}}
}

// Defs returns every built-in's callable signature, keyed by name.
func Defs() map[string]*accessor.Function {
	return map[string]*accessor.Function{
		string(PrintString): {
			Name:        string(PrintString),
			Accessor:    accessor.Public,
			RightParams: []accessor.Param{{Name: "s", Type: types.NewPrimitive(types.StringPrim)}},
			ReturnType:  types.NewVoid(),
			Body:        PrintString,
		},
		string(PrintI32): {
			Name:        string(PrintI32),
			Accessor:    accessor.Public,
			RightParams: []accessor.Param{{Name: "n", Type: types.NewPrimitive(types.I32)}},
			ReturnType:  types.NewVoid(),
			Body:        PrintI32,
		},
		string(ReadChar): {
			Name:       string(ReadChar),
			Accessor:   accessor.Public,
			ReturnType: readResult(types.NewPrimitive(types.Char)),
			Body:       ReadChar,
		},
		string(ReadI32): {
			Name:       string(ReadI32),
			Accessor:   accessor.Public,
			ReturnType: readResult(types.NewPrimitive(types.I32)),
			Body:       ReadI32,
		},
		string(Panic): {
			Name:        string(Panic),
			Accessor:    accessor.Public,
			RightParams: []accessor.Param{{Name: "msg", Type: types.NewPrimitive(types.StringPrim)}},
			ReturnType:  types.NewNever(),
			Body:        Panic,
		},
	}
}
