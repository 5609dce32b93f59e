package templates

import "regexp"

// moduleNameRegex matches a top-level Python package name.
var moduleNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsImportableName reports whether an application directory name can be
// imported as a Python package from the applications root.
func IsImportableName(name string) bool {
	return moduleNameRegex.MatchString(name)
}
