package main

import (
	"fmt"
	"reflect"

	"github.com/TPO-Code/pointsandbox/core"
	"github.com/TPO-Code/pointsandbox/options"
	"github.com/TPO-Code/pointsandbox/util"
)

// displays sizes of the sandbox structs to spot any padding wastage
func memStats(input any) {

	rType := reflect.TypeOf(input)
	fmt.Printf("Size of %s : %d bytes\n", rType.Name(), rType.Size())

	if rType.Kind() == reflect.Struct {
		for i := 0; i < rType.NumField(); i++ {
			field := rType.Field(i)
			fmt.Printf("  Name %s\n", field.Name)
			fmt.Printf("    Offset of    : %d bytes\n", field.Offset)
			fmt.Printf("    Size of      : %d bytes\n", field.Type.Size())
			fmt.Printf("    Alignment of : %d bytes\n", field.Type.Align())
			fmt.Println()
		}
	}
}

func main() {
	memStats(util.Point{})
	memStats(options.SandboxOptions{})
	memStats(core.Sandbox{})
}
