// SPDX-License-Identifier: MPL-2.0

// Command modpack packages a Factorio mod into dist/<name>_<version>.zip.
package main

import cmd "github.com/modpack/modpack/cmd/modpack"

func main() {
	cmd.Execute()
}
