package main

import (
	"fmt"
	"os"
)

func main() {
	app := newApp(defaultEnv())
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
		return
	}
}
