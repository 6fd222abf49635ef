// hostdeck-tap connects to a hostdeck console server and prints every
// notification received over the live websocket channel.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
