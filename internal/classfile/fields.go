package classfile

import "encoding/binary"

// FieldTable accumulates field_info records.
type FieldTable struct {
	data  []byte
	count int
}

// Append adds a public static final synthetic int field named by the Utf8
// entry nameID whose ConstantValue is the Integer entry valueID.
func (t *FieldTable) Append(nameID, valueID uint16) error {
	if t.count >= MaxFields {
		return &LimitError{Kind: LimitFieldCount, Limit: MaxFields}
	}

	t.data = binary.BigEndian.AppendUint16(t.data, FieldFlags)
	t.data = binary.BigEndian.AppendUint16(t.data, nameID)
	t.data = binary.BigEndian.AppendUint16(t.data, IDIntDescriptor)
	t.data = binary.BigEndian.AppendUint16(t.data, 1)
	t.data = binary.BigEndian.AppendUint16(t.data, IDConstantValue)
	t.data = binary.BigEndian.AppendUint32(t.data, constantValueLen)
	t.data = binary.BigEndian.AppendUint16(t.data, valueID)
	t.count++

	return nil
}

// Len returns the number of fields.
func (t *FieldTable) Len() int {
	return t.count
}
