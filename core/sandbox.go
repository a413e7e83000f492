package core

import (
	"fmt"
	"io"

	"github.com/TPO-Code/pointsandbox/options"
	"github.com/TPO-Code/pointsandbox/util"
	log "github.com/sirupsen/logrus"
)

func Greet(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}

// Sandbox runs the point demo and writes its report to out.
type Sandbox struct {
	out     io.Writer
	options options.SandboxOptions
}

func NewSandbox(out io.Writer, opts *options.SandboxOptions) *Sandbox {
	sb := &Sandbox{
		out:     out,
		options: *options.NewSandboxOptions(opts),
	}
	if sb.options.Debug {
		log.SetLevel(log.DebugLevel)
	}
	return sb
}

func (sb *Sandbox) Run() error {
	origin := util.NewPoint(0, 0)
	p := util.NewPoint(3, 4)
	log.Debugf("origin %v, p %v, checked %v", *origin, *p, sb.options.Checked)

	if _, err := fmt.Fprintln(sb.out, Greet(sb.options.Name)); err != nil {
		return fmt.Errorf("writing greeting: %w", err)
	}

	dist, err := sb.distanceSquared(origin, p)
	if err != nil {
		log.Errorf("Error computing distance: %v\n", err)
		return err
	}
	if _, err := fmt.Fprintf(sb.out, "distance^2 = %d\n", dist); err != nil {
		return fmt.Errorf("writing distance: %w", err)
	}

	if err := sb.translate(origin, 1, 1); err != nil {
		log.Errorf("Error translating origin: %v\n", err)
		return err
	}
	log.Debugf("origin moved to %v", *origin)

	if _, err := fmt.Fprintf(sb.out, "moved origin = %v\n", *origin); err != nil {
		return fmt.Errorf("writing moved origin: %w", err)
	}
	return nil
}

func (sb *Sandbox) distanceSquared(a *util.Point, b *util.Point) (int32, error) {
	if sb.options.Checked {
		return util.DistanceSquaredChecked(a, b)
	}
	return util.DistanceSquared(a, b), nil
}

func (sb *Sandbox) translate(p *util.Point, dx int32, dy int32) error {
	if sb.options.Checked {
		return p.TranslateChecked(dx, dy)
	}
	p.Translate(dx, dy)
	return nil
}
