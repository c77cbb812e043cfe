package modular

import (
	"fmt"
	"math/rand"
	"reflect"

	"github.com/renproject/surge"
)

// SizeHint implements the surge.SizeHinter interface.
func (v Value) SizeHint() int {
	return surge.SizeHint(v.value) + surge.SizeHint(v.modulus)
}

// Marshal implements the surge.Marshaler interface.
func (v Value) Marshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := surge.MarshalI32(v.value, buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("marshaling value: %v", err)
	}
	buf, rem, err = surge.MarshalI32(v.modulus, buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("marshaling modulus: %v", err)
	}
	return buf, rem, nil
}

// Unmarshal implements the surge.Unmarshaler interface. Data that does not
// describe a normalised residue is rejected.
func (v *Value) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := surge.UnmarshalI32(&v.value, buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("unmarshaling value: %v", err)
	}
	buf, rem, err = surge.UnmarshalI32(&v.modulus, buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("unmarshaling modulus: %v", err)
	}
	if v.modulus <= 0 {
		return buf, rem, fmt.Errorf("invalid marshalled data: modulus %v is not positive", v.modulus)
	}
	if v.value < 0 || v.value >= v.modulus {
		return buf, rem, fmt.Errorf("invalid marshalled data: value %v is not in [0, %v)", v.value, v.modulus)
	}
	return buf, rem, nil
}

// Generate implements the quick.Generator interface.
func (Value) Generate(rand *rand.Rand, size int) reflect.Value {
	modulus := int(rand.Int31n(1<<16)) + 1
	return reflect.ValueOf(New(rand.Int(), modulus))
}
