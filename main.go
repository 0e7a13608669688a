package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/vadiminshakov/factorial/math"
	"github.com/vadiminshakov/factorial/ui"
)

const number = 5

func main() {
	if err := run(os.Stdout, number); err != nil {
		log.Fatal(ui.Error("failed to calculate factorial: " + err.Error()))
	}
}

func run(w io.Writer, n int) error {
	if _, err := fmt.Fprintln(w, ui.Announce(n)); err != nil {
		return err
	}

	result, err := math.Checked(n)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, ui.Result(n, result))
	return err
}
