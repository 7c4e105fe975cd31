// Package banner renders the startup banner.
package banner

import "fmt"

const art = `
  __ _ _ __ _____      __
 / _` + "`" + ` | '__/ _ \ \ /\ / /
| (_| | | | (_) \ V  V /
 \__,_|_|  \___/ \_/\_/
`

// Banner returns the banner with the version appended.
func Banner(version string) string {
	return fmt.Sprintf("%s        online AROW classifier %s\n\n", art, version)
}
