package main

import (
	"os"

	"github.com/TPO-Code/pointsandbox/core"
	log "github.com/sirupsen/logrus"
)

func main() {
	sb := core.NewSandbox(os.Stdout, nil)
	if err := sb.Run(); err != nil {
		log.Fatalf("sandbox failed: %v", err)
	}
}
