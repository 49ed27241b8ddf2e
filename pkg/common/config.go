package common

type PrintOptions struct {
	Format            string `yaml:"option-format,omitempty"`
	Indent            int    `yaml:"option-indent,omitempty"`
	IncludeIndex      bool   `yaml:"option-include-index,omitempty"`
	TrimValueOnOutput int    `yaml:"option-trim-value-on-output,omitempty"`
}

// Merge fills unset fields of o from defaults.
func (o *PrintOptions) Merge(defaults *PrintOptions) *PrintOptions {
	merged := PrintOptions{}
	if o != nil {
		merged = *o
	}
	if defaults == nil {
		return &merged
	}
	if merged.Format == "" {
		merged.Format = defaults.Format
	}
	if merged.Indent == 0 {
		merged.Indent = defaults.Indent
	}
	if !merged.IncludeIndex {
		merged.IncludeIndex = defaults.IncludeIndex
	}
	if merged.TrimValueOnOutput == 0 {
		merged.TrimValueOnOutput = defaults.TrimValueOnOutput
	}
	return &merged
}
