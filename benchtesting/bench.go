package main

import (
	"fmt"
	"time"

	"github.com/TPO-Code/pointsandbox/util"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

const iterations = 50_000_000

func main() {

	//p := profile.Start(profile.MemProfileHeap, profile.ProfilePath("."))
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	defer p.Stop()

	origin := util.NewPoint(0, 0)
	target := util.NewPoint(3, 4)

	start := time.Now()
	var total int64
	for i := 0; i < iterations; i++ {
		origin.Translate(1, 1)
		total += int64(util.DistanceSquared(origin, target))
		origin.Translate(-1, -1)
	}
	fmt.Printf("wrapping: %d iterations took %d ms (total %d)\n", iterations, time.Since(start).Milliseconds(), total)

	start = time.Now()
	total = 0
	for i := 0; i < iterations; i++ {
		if err := origin.TranslateChecked(1, 1); err != nil {
			log.Fatalf("boomage %v", err)
		}
		d, err := util.DistanceSquaredChecked(origin, target)
		if err != nil {
			log.Fatalf("boomage %v", err)
		}
		total += int64(d)
		if err := origin.TranslateChecked(-1, -1); err != nil {
			log.Fatalf("boomage %v", err)
		}
	}
	fmt.Printf("checked: %d iterations took %d ms (total %d)\n", iterations, time.Since(start).Milliseconds(), total)
}
