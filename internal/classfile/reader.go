// Package classfile implements spec component B, ClassFileReader: a
// bit-exact decoder of one VM class file into a *model.JavaClass.
//
// Orchestration (Parse) follows the same top-level-function-per-step shape
// as tarczynskitomek-jacobin's src/classloader/parser.go (parseMagicNumber
// -> parseJavaVersionNumber -> getConstantPoolCount -> parseConstantPool ->
// parseAccessFlags -> parseClassName -> parseSuperClassName), generalized
// to also walk fields, methods, class attributes, and the two post-passes
// spec.md §4.B calls for.
package classfile

import "depscan/internal/model"

const classFileMagic = 0xCAFEBABE

const (
	accFlagInterface = 0x0200
	accFlagAbstract  = 0x0400
)

// Parse decodes one class file's bytes into a fully populated
// *model.JavaClass, per the wire-level contract in spec.md §4.B.
// f filters which referenced package names are recorded as imports; a
// nil filter accepts everything.
func Parse(data []byte, f acceptor) (*model.JavaClass, error) {
	c := newCursor(data)

	magic, err := c.u32()
	if err != nil {
		return nil, err
	}
	if magic != classFileMagic {
		return nil, newParseError(InvalidClassFile, "bad magic 0x%08X, want 0x%08X", magic, uint32(classFileMagic))
	}

	if _, err := c.u16(); err != nil { // minor version, ignored
		return nil, err
	}
	if _, err := c.u16(); err != nil { // major version, ignored
		return nil, err
	}

	cpCount, err := c.u16()
	if err != nil {
		return nil, err
	}
	pool, err := parseConstantPool(c, cpCount)
	if err != nil {
		return nil, err
	}

	accessFlags, err := c.u16()
	if err != nil {
		return nil, err
	}
	isAbstract := accessFlags&accFlagAbstract != 0 || accessFlags&accFlagInterface != 0

	thisClassIndex, err := c.u16()
	if err != nil {
		return nil, err
	}
	className, err := pool.classDottedName(thisClassIndex)
	if err != nil {
		return nil, err
	}

	class := model.NewJavaClass(className)
	class.PackageName = packageOf(className)
	class.IsAbstract = isAbstract

	addImport := func(pkg string) {
		if pkg == "" || pkg == class.PackageName {
			return
		}
		if f != nil && !f.Accept(pkg) {
			return
		}
		class.AddImport(pkg)
	}

	superClassIndex, err := c.u16()
	if err != nil {
		return nil, err
	}
	if superClassIndex != 0 {
		superName, err := pool.classDottedName(superClassIndex)
		if err != nil {
			return nil, err
		}
		addImport(packageOf(superName))
	}

	interfaceCount, err := c.u16()
	if err != nil {
		return nil, err
	}
	for i := uint16(0); i < interfaceCount; i++ {
		idx, err := c.u16()
		if err != nil {
			return nil, err
		}
		ifaceName, err := pool.classDottedName(idx)
		if err != nil {
			return nil, err
		}
		addImport(packageOf(ifaceName))
	}

	var retainedAnnotations []rawAttribute

	memberAnnotations, err := parseMembers(c, pool, addImport)
	if err != nil {
		return nil, err
	}
	retainedAnnotations = append(retainedAnnotations, memberAnnotations...)

	classAttrs, err := readAttributes(c, pool)
	if err != nil {
		return nil, err
	}
	if sf, ok := findAttribute(classAttrs, sourceFileAttrName); ok {
		name, err := parseSourceFile(sf.data, pool)
		if err != nil {
			return nil, err
		}
		class.SourceFile = name
	}
	retainedAnnotations = append(retainedAnnotations, allAttributesNamed(classAttrs, runtimeVisibleAnnotationsAttrName)...)

	// Post-pass 1 (spec.md §4.B step 10): every CLASS constant-pool entry
	// contributes its package as an import, picking up references buried
	// in bytecode without parsing instructions.
	for _, idx := range pool.classIndices() {
		name, err := pool.classDottedName(idx)
		if err != nil {
			return nil, err
		}
		addImport(packageOf(name))
	}

	// Post-pass 2 (spec.md §4.B step 11): walk every retained
	// RuntimeVisibleAnnotations attribute, class-level and member-level.
	for _, attr := range retainedAnnotations {
		if err := parseRuntimeVisibleAnnotations(attr.data, pool, importSink(addImport)); err != nil {
			return nil, err
		}
	}

	return class, nil
}

// parseMembers reads the fields table and the methods table (identical
// shape, per spec.md §4.B step 8: accessFlags u16, nameIndex u16,
// descriptorIndex u16, attributes), extracting object types from each
// descriptor and collecting any RuntimeVisibleAnnotations attribute for
// post-pass 2.
func parseMembers(c *cursor, pool *constantPool, addImport func(string)) ([]rawAttribute, error) {
	var retained []rawAttribute

	for _, table := range []string{"fields", "methods"} {
		_ = table
		count, err := c.u16()
		if err != nil {
			return nil, err
		}
		for i := uint16(0); i < count; i++ {
			if _, err := c.u16(); err != nil { // access_flags
				return nil, err
			}
			if _, err := c.u16(); err != nil { // name_index
				return nil, err
			}
			descIndex, err := c.u16()
			if err != nil {
				return nil, err
			}
			descriptor, err := pool.utf8(descIndex)
			if err != nil {
				return nil, err
			}
			for _, dotted := range extractObjectTypes(descriptor) {
				addImport(packageOf(dotted))
			}

			attrs, err := readAttributes(c, pool)
			if err != nil {
				return nil, err
			}
			retained = append(retained, allAttributesNamed(attrs, runtimeVisibleAnnotationsAttrName)...)
		}
	}

	return retained, nil
}

// acceptor is the subset of filter.Filter's behavior this package depends
// on, kept minimal so classfile does not need to import the filter
// package's concrete type for anything beyond this one method.
type acceptor interface {
	Accept(name string) bool
}
