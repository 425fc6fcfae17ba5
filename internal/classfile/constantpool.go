package classfile

import "sort"

// Constant pool tags, per JVMS §4.4 and spec.md §4.B's tag table.
const (
	tagUTF8               = 1
	tagInteger            = 3
	tagFloat              = 4
	tagLong               = 5
	tagDouble             = 6
	tagClass              = 7
	tagString             = 8
	tagFieldref           = 9
	tagMethodref          = 10
	tagInterfaceMethodref = 11
	tagNameAndType        = 12
	tagMethodHandle       = 15
	tagMethodType         = 16
	tagInvokeDynamic      = 18
)

// cpEntry is a single constant-pool slot. Only the fields relevant to this
// reader's needs are populated per tag; other corpora's readers keep one
// concrete struct per tag (e.g. other_examples' jclass/types.go), but this
// reader keeps just the UTF8 string value and the name/descriptor index of
// CLASS and MethodType entries -- every other kind (Integer/Float/Long/
// Double/String/refs/NameAndType/MethodHandle/InvokeDynamic) is retained
// as its tag alone, which is all post-pass 1 needs to walk every CLASS
// entry, without this reader needing a concrete type per tag it never
// otherwise inspects.
type cpEntry struct {
	tag byte

	utf8Value string // tagUTF8

	nameIndex uint16 // tagClass, tagMethodType: UTF8 index (class name / descriptor)
}

// constantPool is the 1-indexed constant pool table. index 0 is reserved
// and never populated; LONG and DOUBLE entries occupy two logical slots,
// so size (the raw constant_pool_count read from the class file) is not
// the same as the number of populated entries.
type constantPool struct {
	entries map[uint16]*cpEntry
	size    uint16
}

func newConstantPool(size uint16) *constantPool {
	return &constantPool{entries: make(map[uint16]*cpEntry), size: size}
}

func (p *constantPool) set(i uint16, e *cpEntry) {
	p.entries[i] = e
}

func (p *constantPool) get(i uint16) (*cpEntry, error) {
	if i == 0 || i >= p.size {
		return nil, newParseError(ConstantPoolIndexOutOfRange, "index %d out of range [1, %d)", i, p.size)
	}
	e, ok := p.entries[i]
	if !ok {
		return nil, newParseError(ConstantPoolIndexOutOfRange, "index %d does not address an entry (reserved slot of a LONG/DOUBLE)", i)
	}
	return e, nil
}

func (p *constantPool) utf8(i uint16) (string, error) {
	e, err := p.get(i)
	if err != nil {
		return "", err
	}
	if e.tag != tagUTF8 {
		return "", newParseError(NotUtf8, "index %d expected UTF8, found tag %d", i, e.tag)
	}
	return e.utf8Value, nil
}

// classDottedName resolves a CONSTANT_Class entry to its dotted class name
// ("/" converted to "."), per spec.md §4.B step 5.
func (p *constantPool) classDottedName(i uint16) (string, error) {
	e, err := p.get(i)
	if err != nil {
		return "", err
	}
	if e.tag != tagClass {
		return "", newParseError(NotUtf8, "index %d expected CLASS, found tag %d", i, e.tag)
	}
	internal, err := p.utf8(e.nameIndex)
	if err != nil {
		return "", err
	}
	return internalToDotted(internal), nil
}

// classIndices returns, in ascending index order, every index holding a
// CONSTANT_Class entry. Used by post-pass 1 (spec.md §4.B step 10).
func (p *constantPool) classIndices() []uint16 {
	out := make([]uint16, 0, len(p.entries))
	for i, e := range p.entries {
		if e.tag == tagClass {
			out = append(out, i)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })
	return out
}

// readCPEntry reads one constant-pool entry starting at the tag byte,
// per the table in spec.md §4.B step 3. It returns the number of logical
// indices the entry occupies (1, or 2 for LONG/DOUBLE).
func readCPEntry(c *cursor) (*cpEntry, int, error) {
	tag, err := c.u8()
	if err != nil {
		return nil, 0, err
	}

	switch tag {
	case tagUTF8:
		length, err := c.u16()
		if err != nil {
			return nil, 0, err
		}
		raw, err := c.bytes(int(length))
		if err != nil {
			return nil, 0, err
		}
		s, err := decodeModifiedUTF8(raw)
		if err != nil {
			return nil, 0, err
		}
		return &cpEntry{tag: tag, utf8Value: s}, 1, nil

	case tagInteger, tagFloat:
		if err := c.skip(4); err != nil {
			return nil, 0, err
		}
		return &cpEntry{tag: tag}, 1, nil

	case tagLong, tagDouble:
		if err := c.skip(8); err != nil {
			return nil, 0, err
		}
		return &cpEntry{tag: tag}, 2, nil

	case tagClass:
		nameIndex, err := c.u16()
		if err != nil {
			return nil, 0, err
		}
		return &cpEntry{tag: tag, nameIndex: nameIndex}, 1, nil

	case tagString:
		if _, err := c.u16(); err != nil {
			return nil, 0, err
		}
		return &cpEntry{tag: tag}, 1, nil

	case tagFieldref, tagMethodref, tagInterfaceMethodref, tagNameAndType, tagInvokeDynamic:
		if _, err := c.u16(); err != nil {
			return nil, 0, err
		}
		if _, err := c.u16(); err != nil {
			return nil, 0, err
		}
		return &cpEntry{tag: tag}, 1, nil

	case tagMethodHandle:
		if _, err := c.u8(); err != nil {
			return nil, 0, err
		}
		if _, err := c.u16(); err != nil {
			return nil, 0, err
		}
		return &cpEntry{tag: tag}, 1, nil

	case tagMethodType:
		descIndex, err := c.u16()
		if err != nil {
			return nil, 0, err
		}
		return &cpEntry{tag: tag, nameIndex: descIndex}, 1, nil

	default:
		return nil, 0, newParseError(UnknownConstant, "unrecognized constant pool tag %d", tag)
	}
}

func parseConstantPool(c *cursor, count uint16) (*constantPool, error) {
	pool := newConstantPool(count)
	for i := uint16(1); i < count; i++ {
		entry, width, err := readCPEntry(c)
		if err != nil {
			return nil, err
		}
		pool.set(i, entry)
		if width == 2 {
			i++ // the second slot of a LONG/DOUBLE is reserved, per spec.md step 3
		}
	}
	return pool, nil
}
