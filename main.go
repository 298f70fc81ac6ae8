// SPDX-License-Identifier: MPL-2.0

package main

import cmd "bcrentry/cmd/createbcrentry"

func main() {
	cmd.Execute()
}
