package systemd

import "strings"

// InstallDirToken is the literal placeholder in unit file templates
// that is replaced with the real install directory before the unit
// is installed.
const InstallDirToken = "INSTALL_DIR"

// RenderUnit substitutes every occurrence of the placeholder token
// with the concrete install directory
func RenderUnit(template []byte, installDir string) []byte {
	return []byte(strings.ReplaceAll(string(template), InstallDirToken, installDir))
}
