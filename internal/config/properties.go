// properties.go implements spec component H, ConfigLoader: the
// properties-style configuration format spec.md §6 mandates exactly
// ("key=value", "#" comments, "filtered" values, the reserved "components"
// key). This is kept on the standard library (bufio line scanning,
// strings) plus embed for the fallback resource -- spec.md pins the wire
// format precisely enough (a three-line grammar) that pulling in a
// properties-file library would add a dependency surface with nothing left
// for it to interpret beyond what a 40-line scanner already does.
package config

import (
	"bufio"
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed depscan.properties
var embeddedFS embed.FS

const embeddedResourceName = "depscan.properties"

// Properties is the result of loading and parsing one property file.
type Properties struct {
	// FilterPrefixes holds every key whose value was the literal token
	// "filtered" (the key itself, possibly ending in "*").
	FilterPrefixes []string
	// Components holds the reserved "components" key's value, split on ",".
	Components []string
}

// LoadProperties performs the deterministic search spec.md §4.H mandates:
// (1) explicitPath if non-empty, (2) <user-home>/defaultName, (3) the
// embedded resource named defaultName. The first source that exists wins;
// an explicitly-named file that cannot be read is a ConfigurationError
// (no fallthrough), since the caller asked for that file specifically.
func LoadProperties(explicitPath, defaultName string) (*Properties, error) {
	if explicitPath != "" {
		data, err := os.ReadFile(explicitPath)
		if err != nil {
			return nil, newConfigurationError("cannot read property file %q: %v", explicitPath, err)
		}
		return parseProperties(data)
	}

	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, defaultName)
		if data, err := os.ReadFile(candidate); err == nil {
			return parseProperties(data)
		}
	}

	data, err := embeddedFS.ReadFile(embeddedResourceName)
	if err != nil {
		return nil, newConfigurationError("no property file found (explicit, user-home, or embedded %q): %v", embeddedResourceName, err)
	}
	return parseProperties(data)
}

// parseProperties parses "key=value" lines, "#"-prefixed comments, per
// spec.md §6.
func parseProperties(data []byte) (*Properties, error) {
	props := &Properties{}

	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx < 0 {
			return nil, newConfigurationError("malformed property line (no '='): %q", line)
		}
		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])

		switch {
		case key == "components":
			for _, c := range strings.Split(value, ",") {
				c = strings.TrimSpace(c)
				if c != "" {
					props.Components = append(props.Components, c)
				}
			}
		case value == "filtered":
			props.FilterPrefixes = append(props.FilterPrefixes, key)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, newConfigurationError("error reading property file: %v", err)
	}

	return props, nil
}
