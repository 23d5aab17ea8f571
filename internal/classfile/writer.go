package classfile

import (
	"bytes"
	"encoding/binary"
	"io"
	"iter"
)

// Builder assembles one class file. It is single-use: once Bytes or WriteTo
// has run, every further call fails with ErrConsumed. After AddIntField fails
// the builder is broken and every further call returns that error.
type Builder struct {
	version   Version
	className []byte
	pool      *ConstPool
	fields    FieldTable
	consumed  bool
	broken    error
}

// NewBuilder starts a class named className (binary name, e.g. "org/team/RobotMap").
func NewBuilder(version Version, className string) (*Builder, error) {
	enc, err := encodeUTF8Payload(className)
	if err != nil {
		return nil, err
	}

	return &Builder{
		version:   version,
		className: enc,
		pool:      NewConstPool(),
	}, nil
}

// AddIntField allocates the name and value constants of a field and appends
// the field.
func (b *Builder) AddIntField(name string, value int32) error {
	if err := b.usable(); err != nil {
		return err
	}

	if err := b.addIntField(name, value); err != nil {
		b.broken = err
		return err
	}

	return nil
}

func (b *Builder) addIntField(name string, value int32) error {
	if b.fields.Len() >= MaxFields {
		return &LimitError{Kind: LimitFieldCount, Limit: MaxFields}
	}

	nameID, err := b.pool.InsertUTF8(name)
	if err != nil {
		return err
	}

	valueID, err := b.pool.InsertInteger(value)
	if err != nil {
		return err
	}

	return b.fields.Append(nameID, valueID)
}

func (b *Builder) usable() error {
	if b.consumed {
		return ErrConsumed
	}

	return b.broken
}

// Bytes serializes the class and consumes the builder.
func (b *Builder) Bytes() ([]byte, error) {
	if err := b.usable(); err != nil {
		return nil, err
	}

	b.consumed = true

	var buf bytes.Buffer

	buf.Grow(64 + len(b.className) + len(fixedPrefix) + len(b.pool.data) + len(b.fields.data))

	// Header.
	writeU32(&buf, magic)
	writeU16(&buf, b.version.Minor)
	writeU16(&buf, b.version.Major)

	// Constant pool.
	writeU16(&buf, b.pool.Count())
	buf.Write(appendUTF8Entry(nil, b.className))
	buf.WriteString(fixedPrefix)
	buf.Write(b.pool.data)

	// access_flags, this_class, super_class, interfaces_count.
	writeU16(&buf, ClassFlags)
	writeU16(&buf, IDThisClass)
	writeU16(&buf, IDSuperClass)
	writeU16(&buf, 0)

	// Fields.
	writeU16(&buf, uint16(b.fields.Len()))
	buf.Write(b.fields.data)

	// Methods: the default constructor only.
	writeU16(&buf, 1)
	writeU16(&buf, ConstructorFlags)
	writeU16(&buf, IDInitName)
	writeU16(&buf, IDInitDescriptor)
	writeU16(&buf, 1)
	writeU16(&buf, IDCode)
	writeU32(&buf, codeAttrLen)
	writeU16(&buf, initMaxStack)
	writeU16(&buf, initMaxLocals)
	writeU32(&buf, uint32(len(initCode)))
	buf.Write(initCode)
	writeU16(&buf, 0) // exception_table_length
	writeU16(&buf, 0) // attributes_count

	// Class attributes.
	writeU16(&buf, 0)

	return buf.Bytes(), nil
}

// WriteTo serializes the class into w and consumes the builder. The class is
// assembled in memory first, so a limit error writes nothing.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	data, err := b.Bytes()
	if err != nil {
		return 0, err
	}

	n, err := w.Write(data)

	return int64(n), err
}

// Encode builds a class holding fields in iteration order.
func Encode(version Version, className string, fields iter.Seq2[string, int32]) ([]byte, error) {
	b, err := NewBuilder(version, className)
	if err != nil {
		return nil, err
	}

	for name, value := range fields {
		if err := b.AddIntField(name, value); err != nil {
			return nil, err
		}
	}

	return b.Bytes()
}

func writeU16(buf *bytes.Buffer, v uint16) {
	buf.Write(binary.BigEndian.AppendUint16(nil, v))
}

func writeU32(buf *bytes.Buffer, v uint32) {
	buf.Write(binary.BigEndian.AppendUint32(nil, v))
}
