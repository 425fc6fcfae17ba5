package classfile

const sourceFileAttrName = "SourceFile"
const runtimeVisibleAnnotationsAttrName = "RuntimeVisibleAnnotations"

// maxAnnotationDepth bounds the recursion of nested annotations and array
// element values (spec.md §9 design note: "do not rely on host-stack
// recursion without depth guards"). No legitimate class file nests this
// deep; hitting the guard indicates a malformed or adversarial input.
const maxAnnotationDepth = 64

// rawAttribute is one attribute_info entry, kept as an opaque byte blob
// until the two attributes this reader cares about (SourceFile,
// RuntimeVisibleAnnotations) are picked out by name, per spec.md §4.B
// step 9.
type rawAttribute struct {
	name string
	data []byte
}

// readAttributes reads a u16 count followed by that many attribute_info
// structures: (nameIndex u16, length u32, bytes[length]).
func readAttributes(c *cursor, pool *constantPool) ([]rawAttribute, error) {
	count, err := c.u16()
	if err != nil {
		return nil, err
	}
	out := make([]rawAttribute, 0, count)
	for i := uint16(0); i < count; i++ {
		nameIndex, err := c.u16()
		if err != nil {
			return nil, err
		}
		length, err := c.u32()
		if err != nil {
			return nil, err
		}
		data, err := c.bytes(int(length))
		if err != nil {
			return nil, err
		}
		name, err := pool.utf8(nameIndex)
		if err != nil {
			return nil, err
		}
		out = append(out, rawAttribute{name: name, data: data})
	}
	return out, nil
}

// findAttribute returns the first attribute with the given name, if any.
func findAttribute(attrs []rawAttribute, name string) (rawAttribute, bool) {
	for _, a := range attrs {
		if a.name == name {
			return a, true
		}
	}
	return rawAttribute{}, false
}

// allAttributesNamed returns every attribute with the given name (a class may
// carry at most one well-formed SourceFile attribute, but this reader does
// not enforce that -- it simply takes the first).
func allAttributesNamed(attrs []rawAttribute, name string) []rawAttribute {
	var out []rawAttribute
	for _, a := range attrs {
		if a.name == name {
			out = append(out, a)
		}
	}
	return out
}

// parseSourceFile resolves a SourceFile attribute's body (a single u16
// constant-pool index) to the source file name.
func parseSourceFile(data []byte, pool *constantPool) (string, error) {
	c := newCursor(data)
	idx, err := c.u16()
	if err != nil {
		return "", err
	}
	return pool.utf8(idx)
}

// importSink receives package names discovered while walking an
// annotation's element-value structure.
type importSink func(packageName string)

// parseRuntimeVisibleAnnotations walks a RuntimeVisibleAnnotations
// attribute body: u2 num_annotations; annotation[], per spec.md §4.B
// step 11.
func parseRuntimeVisibleAnnotations(data []byte, pool *constantPool, sink importSink) error {
	c := newCursor(data)
	numAnnotations, err := c.u16()
	if err != nil {
		return err
	}
	for i := uint16(0); i < numAnnotations; i++ {
		if err := parseAnnotation(c, pool, sink, 0); err != nil {
			return err
		}
	}
	return nil
}

// parseAnnotation reads: u2 type_index; u2 num_element_value_pairs;
// {u2 name_index; element_value}[].
func parseAnnotation(c *cursor, pool *constantPool, sink importSink, depth int) error {
	if depth > maxAnnotationDepth {
		return newParseError(TruncatedInput, "annotation nesting exceeds depth guard (%d)", maxAnnotationDepth)
	}
	if _, err := c.u16(); err != nil { // type_index: not itself reported as an import by spec.md step 11
		return err
	}
	numPairs, err := c.u16()
	if err != nil {
		return err
	}
	for i := uint16(0); i < numPairs; i++ {
		if _, err := c.u16(); err != nil { // element_name_index
			return err
		}
		if err := parseElementValue(c, pool, sink, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// parseElementValue reads one element_value: a 1-byte tag followed by a
// tag-specific body, per spec.md §4.B step 11's tag table.
func parseElementValue(c *cursor, pool *constantPool, sink importSink, depth int) error {
	if depth > maxAnnotationDepth {
		return newParseError(TruncatedInput, "element_value nesting exceeds depth guard (%d)", maxAnnotationDepth)
	}

	tag, err := c.u8()
	if err != nil {
		return err
	}

	switch tag {
	case 'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z', 's':
		// 2-byte constant index; the referenced constant itself is not a
		// class reference, so nothing is added as an import.
		_, err := c.u16()
		return err

	case 'e':
		// u2 type_name_index, u2 const_name_index. type_name_index is a
		// UTF8 field descriptor ("Lcom/acme/Color;") naming the enum type.
		typeNameIndex, err := c.u16()
		if err != nil {
			return err
		}
		if _, err := c.u16(); err != nil { // const_name_index
			return err
		}
		descriptor, err := pool.utf8(typeNameIndex)
		if err != nil {
			return err
		}
		for _, dotted := range extractObjectTypes(descriptor) {
			sink(packageOf(dotted))
		}
		return nil

	case 'c':
		// u2 class_info_index: a UTF8 index holding a field descriptor of
		// the class being "used" as a value, e.g. "Lcom/acme/Foo;" (or,
		// per JVMS, sometimes the bare internal form without "L"/";").
		classInfoIndex, err := c.u16()
		if err != nil {
			return err
		}
		raw, err := pool.utf8(classInfoIndex)
		if err != nil {
			return err
		}
		dotted := internalToDotted(stripDescriptorMarkers(raw))
		sink(packageOf(dotted))
		return nil

	case '@':
		return parseAnnotation(c, pool, sink, depth+1)

	case '[':
		numValues, err := c.u16()
		if err != nil {
			return err
		}
		for i := uint16(0); i < numValues; i++ {
			if err := parseElementValue(c, pool, sink, depth+1); err != nil {
				return err
			}
		}
		return nil

	default:
		return newParseError(UnknownConstant, "unrecognized element_value tag %q", tag)
	}
}

// stripDescriptorMarkers strips a leading "L" and trailing ";" from a
// field-descriptor-shaped string, if present, leaving the bare internal
// class name either way.
func stripDescriptorMarkers(s string) string {
	if len(s) >= 2 && s[0] == 'L' && s[len(s)-1] == ';' {
		return s[1 : len(s)-1]
	}
	return s
}
