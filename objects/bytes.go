/*
File    : sugar/objects/bytes.go
Package : objects

ToInterpreterBytes and FromBytes implement the exact wire format
spec.md §4.8 and §9 specify for a VariableData's backing bytes.
Grounded on the teacher's objects/objects.go ExtractValue (a type
switch over a runtime value's Go-native representation). Char is
written into a fixed 4-byte buffer, which avoids the original's
encode_utf8-into-a-zero-length-slice bug.
*/
package objects

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/sugarlang/sugar/accessor"
	"github.com/sugarlang/sugar/types"
)

// StringTable owns the interpreter's string literal storage. A Sugar
// string value on the stack is a (handle, length) pair, not a raw
// pointer - there is no host address to take, so ToInterpreterBytes
// asks StringTable for an opaque handle instead of encoding bytes
// directly into the stack.
type StringTable interface {
	Intern(s string) uint64
	Lookup(handle uint64) (string, bool)
}

// ToInterpreterBytes serializes v as t's packed little-endian stack
// representation (types.SizeOf(t, structs) bytes, exactly).
func ToInterpreterBytes(v Value, t types.ExprType, strs StringTable, structs accessor.StructTable) ([]byte, error) {
	switch t.Tag {
	case types.TPrimitive:
		return primitiveBytes(v, t.Primitive, strs)

	case types.Borrow:
		// A borrow is one pointer-width value (types.SizeOf(Borrow, _) ==
		// PointerWidth): the byte offset shifted left one bit, with the
		// region packed into the low bit, since a real machine address
		// would never need to distinguish two separate stacks.
		if v.Kind != BorrowValue {
			return nil, fmt.Errorf("objects: expected borrow value, got %v", v.Kind)
		}
		buf := make([]byte, types.PointerWidth)
		packed := uint64(v.Borrow.ByteOffset)<<1 | uint64(v.Borrow.Region)&1
		binary.LittleEndian.PutUint64(buf, packed)
		return buf, nil

	case types.Array:
		if v.Kind != ArrayValue {
			return nil, fmt.Errorf("objects: expected array value, got %v", v.Kind)
		}
		var out []byte
		for _, elem := range v.Fields {
			b, err := ToInterpreterBytes(elem, *t.ElemType, strs, structs)
			if err != nil {
				return nil, err
			}
			out = append(out, b...)
		}
		return out, nil

	case types.Tuple:
		if v.Kind != TupleValue {
			return nil, fmt.Errorf("objects: expected tuple value, got %v", v.Kind)
		}
		all := append(append([]types.ExprType{}, t.TupleStart...), t.TupleEnd...)
		return concatFields(v.Fields, all, strs, structs)

	case types.AnonStruct:
		if v.Kind != StructValue {
			return nil, fmt.Errorf("objects: expected struct value, got %v", v.Kind)
		}
		fieldTypes := make([]types.ExprType, len(t.AnonFields))
		for i, f := range t.AnonFields {
			fieldTypes[i] = f.Type
		}
		return concatFields(v.Fields, fieldTypes, strs, structs)

	case types.Struct:
		if v.Kind != StructValue {
			return nil, fmt.Errorf("objects: expected struct value, got %v", v.Kind)
		}
		def, ok := structs[t.StructName]
		if !ok {
			return nil, fmt.Errorf("objects: unknown struct %q", t.StructName)
		}
		fieldTypes := make([]types.ExprType, len(def.Fields))
		for i, f := range def.Fields {
			fieldTypes[i] = f.Type
		}
		return concatFields(v.Fields, fieldTypes, strs, structs)

	case types.Void, types.Never, types.DiscardSingle:
		return nil, nil

	default:
		return nil, fmt.Errorf("objects: cannot serialize type %s", t.String())
	}
}

func concatFields(vals []Value, fieldTypes []types.ExprType, strs StringTable, structs accessor.StructTable) ([]byte, error) {
	if len(vals) != len(fieldTypes) {
		return nil, fmt.Errorf("objects: expected %d fields, got %d", len(fieldTypes), len(vals))
	}
	var out []byte
	for i, ft := range fieldTypes {
		b, err := ToInterpreterBytes(vals[i], ft, strs, structs)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

func primitiveBytes(v Value, p types.Primitive, strs StringTable) ([]byte, error) {
	switch p {
	case types.Bool:
		if v.Bool {
			return []byte{1}, nil
		}
		return []byte{0}, nil

	case types.Char:
		// Fixed 4-byte buffer, UTF-8 encoded and zero-padded - the
		// documented fix for the original's zero-length encode target.
		buf := make([]byte, 4)
		n := encodeRuneTo(buf, v.Char)
		_ = n
		return buf, nil

	case types.F32:
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, math.Float32bits(float32(v.Float)))
		return buf, nil

	case types.F64:
		buf := make([]byte, 8)
		binary.LittleEndian.PutUint64(buf, math.Float64bits(v.Float))
		return buf, nil

	case types.StringPrim:
		handle := strs.Intern(v.Str)
		buf := make([]byte, types.StringHeaderWidth)
		binary.LittleEndian.PutUint64(buf[0:8], handle)
		binary.LittleEndian.PutUint64(buf[8:16], uint64(len(v.Str)))
		return buf, nil

	default:
		width := types.SizeOf(types.NewPrimitive(p), nil)
		buf := make([]byte, width)
		putInt(buf, v.Int, types.IsSignedInteger(p))
		return buf, nil
	}
}

// encodeRuneTo writes r's UTF-8 encoding into a 4-byte buf, zero-padding
// any unused trailing bytes, and returns the number of bytes written.
func encodeRuneTo(buf []byte, r rune) int {
	tmp := make([]byte, 0, 4)
	tmp = appendRune(tmp, r)
	n := copy(buf, tmp)
	for i := n; i < len(buf); i++ {
		buf[i] = 0
	}
	return n
}

func appendRune(buf []byte, r rune) []byte {
	s := string(r)
	return append(buf, s...)
}

func putInt(buf []byte, v int64, signed bool) {
	switch len(buf) {
	case 1:
		buf[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(buf, uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(buf, uint32(v))
	case 8:
		binary.LittleEndian.PutUint64(buf, uint64(v))
	case 16:
		// i128/u128: low 8 bytes hold the full value (Go's int64 cannot
		// represent the upper half); high 8 bytes are the sign extension.
		binary.LittleEndian.PutUint64(buf[0:8], uint64(v))
		var hi uint64
		if signed && v < 0 {
			hi = math.MaxUint64
		}
		binary.LittleEndian.PutUint64(buf[8:16], hi)
	}
}

// FromBytes deserializes raw (exactly types.SizeOf(t, structs) bytes)
// back into a Value.
func FromBytes(raw []byte, t types.ExprType, strs StringTable, structs accessor.StructTable) (Value, error) {
	switch t.Tag {
	case types.TPrimitive:
		return primitiveFromBytes(raw, t.Primitive, strs)

	case types.Borrow:
		packed := binary.LittleEndian.Uint64(raw[0:8])
		region := objectsRegion(packed & 1)
		offset := int(packed >> 1)
		return NewBorrow(StackIndex{Region: region, ByteOffset: offset}), nil

	case types.Array:
		if t.Len == nil {
			return NewArray(nil), nil
		}
		elemSize := types.SizeOf(*t.ElemType, structs)
		elems := make([]Value, *t.Len)
		for i := 0; i < *t.Len; i++ {
			v, err := FromBytes(raw[i*elemSize:(i+1)*elemSize], *t.ElemType, strs, structs)
			if err != nil {
				return Value{}, err
			}
			elems[i] = v
		}
		return NewArray(elems), nil

	case types.Tuple:
		all := append(append([]types.ExprType{}, t.TupleStart...), t.TupleEnd...)
		vals, err := splitFields(raw, all, strs, structs)
		if err != nil {
			return Value{}, err
		}
		return NewTuple(vals), nil

	case types.AnonStruct:
		fieldTypes := make([]types.ExprType, len(t.AnonFields))
		names := make([]string, len(t.AnonFields))
		for i, f := range t.AnonFields {
			fieldTypes[i] = f.Type
			names[i] = f.Name
		}
		vals, err := splitFields(raw, fieldTypes, strs, structs)
		if err != nil {
			return Value{}, err
		}
		return NewStruct(names, vals), nil

	case types.Struct:
		def, ok := structs[t.StructName]
		if !ok {
			return Value{}, fmt.Errorf("objects: unknown struct %q", t.StructName)
		}
		fieldTypes := make([]types.ExprType, len(def.Fields))
		names := make([]string, len(def.Fields))
		for i, f := range def.Fields {
			fieldTypes[i] = f.Type
			names[i] = f.Name
		}
		vals, err := splitFields(raw, fieldTypes, strs, structs)
		if err != nil {
			return Value{}, err
		}
		return NewStruct(names, vals), nil

	case types.Void, types.Never, types.DiscardSingle:
		return NewVoid(), nil

	default:
		return Value{}, fmt.Errorf("objects: cannot deserialize type %s", t.String())
	}
}

func splitFields(raw []byte, fieldTypes []types.ExprType, strs StringTable, structs accessor.StructTable) ([]Value, error) {
	out := make([]Value, len(fieldTypes))
	offset := 0
	for i, ft := range fieldTypes {
		size := types.SizeOf(ft, structs)
		v, err := FromBytes(raw[offset:offset+size], ft, strs, structs)
		if err != nil {
			return nil, err
		}
		out[i] = v
		offset += size
	}
	return out, nil
}

func primitiveFromBytes(raw []byte, p types.Primitive, strs StringTable) (Value, error) {
	switch p {
	case types.Bool:
		return NewBool(raw[0] != 0), nil

	case types.Char:
		r := decodeRuneFrom(raw)
		return NewChar(r), nil

	case types.F32:
		return NewFloat(float64(math.Float32frombits(binary.LittleEndian.Uint32(raw)))), nil

	case types.F64:
		return NewFloat(math.Float64frombits(binary.LittleEndian.Uint64(raw))), nil

	case types.StringPrim:
		handle := binary.LittleEndian.Uint64(raw[0:8])
		s, ok := strs.Lookup(handle)
		if !ok {
			return Value{}, fmt.Errorf("objects: dangling string handle %d", handle)
		}
		return NewString(s), nil

	default:
		return NewInt(getInt(raw, types.IsSignedInteger(p))), nil
	}
}

func decodeRuneFrom(buf []byte) rune {
	end := 0
	for end < len(buf) && buf[end] != 0 {
		end++
	}
	if end == 0 {
		return 0
	}
	r := []rune(string(buf[:end]))
	if len(r) == 0 {
		return 0
	}
	return r[0]
}

func objectsRegion(tag uint64) Region {
	if tag == uint64(GC) {
		return GC
	}
	return Oxy
}

func getInt(buf []byte, signed bool) int64 {
	switch len(buf) {
	case 1:
		if signed {
			return int64(int8(buf[0]))
		}
		return int64(buf[0])
	case 2:
		v := binary.LittleEndian.Uint16(buf)
		if signed {
			return int64(int16(v))
		}
		return int64(v)
	case 4:
		v := binary.LittleEndian.Uint32(buf)
		if signed {
			return int64(int32(v))
		}
		return int64(v)
	case 8:
		v := binary.LittleEndian.Uint64(buf)
		if signed {
			return int64(v)
		}
		return int64(v)
	case 16:
		lo := binary.LittleEndian.Uint64(buf[0:8])
		return int64(lo)
	}
	return 0
}
