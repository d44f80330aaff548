// Command morose converts text to Morse code and back.
//
//	morose hello world        # .... . .-.. .-.. --- / .-- --- .-. .-.. -..
//	morose --from ... --- ... # SOS
package main

import (
	"os"

	"github.com/npillmayer/morose/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
