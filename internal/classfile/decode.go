package classfile

import (
	"encoding/binary"
	"fmt"
)

// ClassInfo is the decoded view of a class file.
type ClassInfo struct {
	Version     Version
	AccessFlags uint16
	ThisClass   string
	SuperClass  string
	// PoolCount is the constant_pool_count header value.
	PoolCount  uint16
	Interfaces []string
	Fields     []FieldInfo
	Methods    []MethodInfo
}

// FieldInfo is a decoded field.
type FieldInfo struct {
	Name        string
	Descriptor  string
	AccessFlags uint16
	// ConstantValue is set when the field carries an Integer ConstantValue.
	ConstantValue *int32
}

// MethodInfo is a decoded method.
type MethodInfo struct {
	Name        string
	Descriptor  string
	AccessFlags uint16
	MaxStack    uint16
	MaxLocals   uint16
	Code        []byte
}

// poolEntry is one decoded constant. Unused slots after Long and Double
// entries have tag 0.
type poolEntry struct {
	tag   byte
	text  string
	value int32
	ref1  uint16
	ref2  uint16
}

type decoder struct {
	data []byte
	off  int
	pool []poolEntry
}

// Decode parses a class file. Constant pool tags of any kind are accepted;
// only Utf8, Integer and Class entries are interpreted.
func Decode(data []byte) (*ClassInfo, error) {
	d := &decoder{data: data}

	if m, err := d.u32(); err != nil {
		return nil, err
	} else if m != magic {
		return nil, d.errorf(0, "bad magic %#08x", m)
	}

	info := &ClassInfo{}

	var err error
	if info.Version.Minor, err = d.u16(); err != nil {
		return nil, err
	}

	if info.Version.Major, err = d.u16(); err != nil {
		return nil, err
	}

	if info.PoolCount, err = d.u16(); err != nil {
		return nil, err
	}

	if err := d.readPool(info.PoolCount); err != nil {
		return nil, err
	}

	if err := d.readHeader(info); err != nil {
		return nil, err
	}

	if info.Fields, err = d.readFields(); err != nil {
		return nil, err
	}

	if info.Methods, err = d.readMethods(); err != nil {
		return nil, err
	}

	if err := d.skipAttributes(); err != nil {
		return nil, err
	}

	if d.off != len(d.data) {
		return nil, d.errorf(d.off, "%d trailing bytes", len(d.data)-d.off)
	}

	return info, nil
}

func (d *decoder) errorf(off int, format string, args ...any) *DecodeError {
	return &DecodeError{Offset: off, Msg: fmt.Sprintf(format, args...)}
}

func (d *decoder) take(n int) ([]byte, error) {
	if n < 0 || d.off+n > len(d.data) {
		return nil, d.errorf(d.off, "unexpected end of data, need %d bytes", n)
	}

	b := d.data[d.off : d.off+n]
	d.off += n

	return b, nil
}

func (d *decoder) u8() (byte, error) {
	b, err := d.take(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

func (d *decoder) u16() (uint16, error) {
	b, err := d.take(2)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint16(b), nil
}

func (d *decoder) u32() (uint32, error) {
	b, err := d.take(4)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint32(b), nil
}

// constSize is the payload size of fixed-size constant pool entries.
var constSize = map[byte]int{
	tagInteger:            4,
	tagFloat:              4,
	tagLong:               8,
	tagDouble:             8,
	tagClass:              2,
	tagString:             2,
	tagFieldref:           4,
	tagMethodref:          4,
	tagInterfaceMethodref: 4,
	tagNameAndType:        4,
	tagMethodHandle:       3,
	tagMethodType:         2,
	tagDynamic:            4,
	tagInvokeDynamic:      4,
	tagModule:             2,
	tagPackage:            2,
}

func (d *decoder) readPool(count uint16) error {
	if count == 0 {
		return d.errorf(d.off, "constant pool count is zero")
	}

	d.pool = make([]poolEntry, count)

	for i := 1; i < int(count); i++ {
		start := d.off

		tag, err := d.u8()
		if err != nil {
			return err
		}

		e := poolEntry{tag: tag}

		if tag == tagUtf8 {
			n, err := d.u16()
			if err != nil {
				return err
			}

			raw, err := d.take(int(n))
			if err != nil {
				return err
			}

			if e.text, err = decodeModifiedUTF8(raw); err != nil {
				return d.errorf(start, "constant #%d: %v", i, err)
			}

			d.pool[i] = e

			continue
		}

		size, ok := constSize[tag]
		if !ok {
			return d.errorf(start, "constant #%d: unknown tag %d", i, tag)
		}

		payload, err := d.take(size)
		if err != nil {
			return err
		}

		switch tag {
		case tagInteger:
			e.value = int32(binary.BigEndian.Uint32(payload))
		case tagClass:
			e.ref1 = binary.BigEndian.Uint16(payload)
		case tagNameAndType, tagMethodref, tagFieldref, tagInterfaceMethodref:
			e.ref1 = binary.BigEndian.Uint16(payload)
			e.ref2 = binary.BigEndian.Uint16(payload[2:])
		}

		d.pool[i] = e

		// Long and Double occupy two slots.
		if tag == tagLong || tag == tagDouble {
			i++
		}
	}

	return nil
}

func (d *decoder) entry(id uint16, tag byte) (poolEntry, error) {
	if id == 0 || int(id) >= len(d.pool) || d.pool[id].tag != tag {
		return poolEntry{}, d.errorf(d.off, "constant #%d is not a tag %d entry", id, tag)
	}

	return d.pool[id], nil
}

func (d *decoder) utf8At(id uint16) (string, error) {
	e, err := d.entry(id, tagUtf8)
	if err != nil {
		return "", err
	}

	return e.text, nil
}

func (d *decoder) classNameAt(id uint16) (string, error) {
	e, err := d.entry(id, tagClass)
	if err != nil {
		return "", err
	}

	return d.utf8At(e.ref1)
}

func (d *decoder) readHeader(info *ClassInfo) error {
	var err error
	if info.AccessFlags, err = d.u16(); err != nil {
		return err
	}

	thisID, err := d.u16()
	if err != nil {
		return err
	}

	if info.ThisClass, err = d.classNameAt(thisID); err != nil {
		return err
	}

	superID, err := d.u16()
	if err != nil {
		return err
	}

	if superID != 0 {
		if info.SuperClass, err = d.classNameAt(superID); err != nil {
			return err
		}
	}

	n, err := d.u16()
	if err != nil {
		return err
	}

	for range n {
		id, err := d.u16()
		if err != nil {
			return err
		}

		name, err := d.classNameAt(id)
		if err != nil {
			return err
		}

		info.Interfaces = append(info.Interfaces, name)
	}

	return nil
}

// member is the shared prefix of field_info and method_info.
type member struct {
	flags      uint16
	name       string
	descriptor string
}

func (d *decoder) readMember() (member, error) {
	var m member

	var err error
	if m.flags, err = d.u16(); err != nil {
		return m, err
	}

	nameID, err := d.u16()
	if err != nil {
		return m, err
	}

	if m.name, err = d.utf8At(nameID); err != nil {
		return m, err
	}

	descID, err := d.u16()
	if err != nil {
		return m, err
	}

	m.descriptor, err = d.utf8At(descID)

	return m, err
}

// readAttribute returns the name and body of the next attribute_info.
func (d *decoder) readAttribute() (string, []byte, error) {
	nameID, err := d.u16()
	if err != nil {
		return "", nil, err
	}

	name, err := d.utf8At(nameID)
	if err != nil {
		return "", nil, err
	}

	n, err := d.u32()
	if err != nil {
		return "", nil, err
	}

	body, err := d.take(int(n))

	return name, body, err
}

func (d *decoder) readFields() ([]FieldInfo, error) {
	count, err := d.u16()
	if err != nil {
		return nil, err
	}

	fields := make([]FieldInfo, 0, count)

	for range count {
		m, err := d.readMember()
		if err != nil {
			return nil, err
		}

		f := FieldInfo{Name: m.name, Descriptor: m.descriptor, AccessFlags: m.flags}

		attrs, err := d.u16()
		if err != nil {
			return nil, err
		}

		for range attrs {
			name, body, err := d.readAttribute()
			if err != nil {
				return nil, err
			}

			if name != "ConstantValue" || len(body) != constantValueLen {
				continue
			}

			id := binary.BigEndian.Uint16(body)
			if int(id) < len(d.pool) && d.pool[id].tag == tagInteger {
				v := d.pool[id].value
				f.ConstantValue = &v
			}
		}

		fields = append(fields, f)
	}

	return fields, nil
}

func (d *decoder) readMethods() ([]MethodInfo, error) {
	count, err := d.u16()
	if err != nil {
		return nil, err
	}

	methods := make([]MethodInfo, 0, count)

	for range count {
		m, err := d.readMember()
		if err != nil {
			return nil, err
		}

		mi := MethodInfo{Name: m.name, Descriptor: m.descriptor, AccessFlags: m.flags}

		attrs, err := d.u16()
		if err != nil {
			return nil, err
		}

		for range attrs {
			name, body, err := d.readAttribute()
			if err != nil {
				return nil, err
			}

			if name == "Code" && len(body) >= 8 {
				mi.MaxStack = binary.BigEndian.Uint16(body)
				mi.MaxLocals = binary.BigEndian.Uint16(body[2:])

				n := int(binary.BigEndian.Uint32(body[4:]))
				if 8+n > len(body) {
					return nil, d.errorf(d.off, "method %s: code length %d overruns attribute", mi.Name, n)
				}

				mi.Code = body[8 : 8+n]
			}
		}

		methods = append(methods, mi)
	}

	return methods, nil
}

func (d *decoder) skipAttributes() error {
	n, err := d.u16()
	if err != nil {
		return err
	}

	for range n {
		if _, _, err := d.readAttribute(); err != nil {
			return err
		}
	}

	return nil
}
