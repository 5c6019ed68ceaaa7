// Command jcal converts dates between the Gregorian and Persian calendars and
// prints Persian month grids.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "jcal:", err)
		os.Exit(1)
	}
}
