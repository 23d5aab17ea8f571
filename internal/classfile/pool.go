package classfile

import "encoding/binary"

// ConstPool accumulates the dynamic constant pool entries that follow the
// fixed prefix. Every insert allocates the next ID; nothing is deduplicated.
type ConstPool struct {
	data   []byte
	lastID uint16
}

// NewConstPool creates a pool whose first dynamic entry gets ID 12.
func NewConstPool() *ConstPool {
	return &ConstPool{lastID: fixedEntries}
}

// InsertUTF8 appends a CONSTANT_Utf8 entry holding s in modified UTF-8.
func (p *ConstPool) InsertUTF8(s string) (uint16, error) {
	enc, err := encodeUTF8Payload(s)
	if err != nil {
		return 0, err
	}

	id, err := p.allocate()
	if err != nil {
		return 0, err
	}

	p.data = appendUTF8Entry(p.data, enc)

	return id, nil
}

// InsertInteger appends a CONSTANT_Integer entry holding v.
func (p *ConstPool) InsertInteger(v int32) (uint16, error) {
	id, err := p.allocate()
	if err != nil {
		return 0, err
	}

	p.data = append(p.data, tagInteger)
	p.data = binary.BigEndian.AppendUint32(p.data, uint32(v))

	return id, nil
}

// LastID returns the highest allocated ID.
func (p *ConstPool) LastID() uint16 {
	return p.lastID
}

// Count returns the constant_pool_count header value, one more than the
// highest ID.
func (p *ConstPool) Count() uint16 {
	return p.lastID + 1
}

func (p *ConstPool) allocate() (uint16, error) {
	if p.lastID >= MaxPoolID {
		return 0, &LimitError{Kind: LimitPoolSize, Limit: MaxPoolID}
	}

	p.lastID++

	return p.lastID, nil
}

// encodeUTF8Payload encodes s and checks it fits a Utf8 entry.
func encodeUTF8Payload(s string) ([]byte, error) {
	enc, err := encodeModifiedUTF8(s)
	if err != nil {
		return nil, err
	}

	if len(enc) > MaxUTF8Len {
		return nil, &LimitError{Kind: LimitUTF8Length, Limit: MaxUTF8Len, Actual: len(enc)}
	}

	return enc, nil
}

func appendUTF8Entry(dst, enc []byte) []byte {
	dst = append(dst, tagUtf8)
	dst = binary.BigEndian.AppendUint16(dst, uint16(len(enc)))

	return append(dst, enc...)
}
