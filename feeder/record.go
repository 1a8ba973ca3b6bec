package feeder

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

const (
	nameField   protowire.Number = 1
	valuesField protowire.Number = 2
)

// Record is a named list literal, values are in written order.
type Record struct {
	Name   string
	Values []int64
}

// MarshalBinary encodes the record in protobuf wire format, the name as field 1
// and the values as packed zigzag varints in field 2.
func (r *Record) MarshalBinary() ([]byte, error) {
	b := protowire.AppendTag(nil, nameField, protowire.BytesType)
	b = protowire.AppendString(b, r.Name)
	if len(r.Values) == 0 {
		return b, nil
	}
	var packed []byte
	for _, v := range r.Values {
		packed = protowire.AppendVarint(packed, protowire.EncodeZigZag(v))
	}
	b = protowire.AppendTag(b, valuesField, protowire.BytesType)
	b = protowire.AppendBytes(b, packed)

	return b, nil
}

// UnmarshalBinary decodes a record produced by MarshalBinary. Values sent
// unpacked are accepted as well, unknown fields are skipped.
func (r *Record) UnmarshalBinary(b []byte) error {
	m := &Record{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrUnmarshalRecord, protowire.ParseError(n))
		}
		b = b[n:]
		switch {
		case num == nameField && typ == protowire.BytesType:
			var s string
			s, n = protowire.ConsumeString(b)
			m.Name = s
		case num == valuesField && typ == protowire.BytesType:
			var packed []byte
			packed, n = protowire.ConsumeBytes(b)
			if n < 0 {
				break
			}
			for len(packed) > 0 {
				v, l := protowire.ConsumeVarint(packed)
				if l < 0 {
					return fmt.Errorf("%w: values: %v", ErrUnmarshalRecord, protowire.ParseError(l))
				}
				m.Values = append(m.Values, protowire.DecodeZigZag(v))
				packed = packed[l:]
			}
		case num == valuesField && typ == protowire.VarintType:
			var v uint64
			v, n = protowire.ConsumeVarint(b)
			m.Values = append(m.Values, protowire.DecodeZigZag(v))
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return fmt.Errorf("%w: field %d: %v", ErrUnmarshalRecord, num, protowire.ParseError(n))
		}
		b = b[n:]
	}
	*r = *m

	return nil
}
