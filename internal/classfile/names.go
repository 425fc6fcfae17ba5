package classfile

import (
	"strings"

	"depscan/internal/model"
)

// internalToDotted converts the JVM's internal class-name form (using "/"
// as a separator, e.g. "com/acme/Foo") to dotted form ("com.acme.Foo").
func internalToDotted(internal string) string {
	return strings.ReplaceAll(internal, "/", ".")
}

// packageOf returns everything before the last "." in a dotted class
// name, or model.DefaultPackageName if there is no dot (spec.md §4.B
// step 5).
func packageOf(dottedClassName string) string {
	i := strings.LastIndex(dottedClassName, ".")
	if i < 0 {
		return model.DefaultPackageName
	}
	return dottedClassName[:i]
}

// extractObjectTypes scans a field or method descriptor for every
// object-type token, delimited by "L...;" -- this works uniformly for
// field descriptors (a single type) and method descriptors
// ("(params)return"), and for array descriptors ("[L...;") since the
// leading "[" and dimension markers are simply skipped over, per
// spec.md §4.B step 8 and the "Imported-package rule" in §4.B.
// Primitive types contribute nothing, matching spec.
func extractObjectTypes(descriptor string) []string {
	var out []string
	i := 0
	for i < len(descriptor) {
		if descriptor[i] == 'L' {
			end := strings.IndexByte(descriptor[i+1:], ';')
			if end < 0 {
				break
			}
			internal := descriptor[i+1 : i+1+end]
			out = append(out, internalToDotted(internal))
			i = i + 1 + end + 1
			continue
		}
		i++
	}
	return out
}
