package options

const DefaultName = "Go"

type SandboxOptions struct {
	Debug bool

	// Name is who the greeting is addressed to.
	Name string

	// Checked switches the demo to the overflow checked point operations.
	Checked bool
}

func NewSandboxOptions(options *SandboxOptions) *SandboxOptions {

	opt := &SandboxOptions{Name: DefaultName}
	if options != nil {
		opt.Debug = options.Debug
		opt.Checked = options.Checked
		if options.Name != "" {
			opt.Name = options.Name
		}
	}
	return opt
}
