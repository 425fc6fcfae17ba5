package model

// UnknownSourceFile is used when a class has no SourceFile attribute.
const UnknownSourceFile = "Unknown"

// JavaClass is a single parsed class or interface. Equality is by Name.
type JavaClass struct {
	// Name is the fully-qualified, dotted class name (e.g. "com.acme.Foo").
	Name string

	// PackageName is everything before the last dot in Name, or
	// model.DefaultPackageName if Name has no dot. Set when the class is
	// first parsed; "default" is only a placeholder before that.
	PackageName string

	// IsAbstract is true for abstract classes and for interfaces.
	IsAbstract bool

	// SourceFile comes from the class's SourceFile attribute, or
	// UnknownSourceFile if absent.
	SourceFile string

	importedPackages map[string]bool
}

// NewJavaClass returns a class with an unresolved package and no imports.
func NewJavaClass(name string) *JavaClass {
	return &JavaClass{
		Name:             name,
		PackageName:      "default",
		SourceFile:       UnknownSourceFile,
		importedPackages: make(map[string]bool),
	}
}

// AddImport records that this class references packageName, unless it is
// the class's own package (a class never depends on its own package).
func (c *JavaClass) AddImport(packageName string) {
	if packageName == "" || packageName == c.PackageName {
		return
	}
	c.importedPackages[packageName] = true
}

// ImportedPackages returns the names of every package this class imports.
func (c *JavaClass) ImportedPackages() []string {
	out := make([]string, 0, len(c.importedPackages))
	for name := range c.importedPackages {
		out = append(out, name)
	}
	return out
}
