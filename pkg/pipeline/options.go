package pipeline

import (
	"github.com/charmbracelet/log"

	"github.com/mverbeek/depchart/pkg/cache"
	"github.com/mverbeek/depchart/pkg/errors"
)

// Supported diagram output formats.
const (
	FormatPlantUML = "plantuml"
	FormatDOT      = "dot"
)

// ValidFormats returns the supported diagram formats in display order.
func ValidFormats() []string {
	return []string{FormatPlantUML, FormatDOT}
}

// ValidateFormat checks that format names a supported diagram format.
func ValidateFormat(format string) error {
	switch format {
	case FormatPlantUML, FormatDOT:
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want plantuml or dot)", format)
	}
}

// Options configures a pipeline run.
type Options struct {
	// Input is the manifest file path. Required for Execute and Load.
	Input string

	// Format selects the diagram output. Defaults to plantuml.
	Format string

	// Target is an optional node ID; when set, the analysis report
	// includes the dependency partition around it.
	Target string

	// Detailed includes node metadata in diagram labels.
	Detailed bool

	// Refresh bypasses cache reads so results are recomputed.
	Refresh bool

	// Logger overrides the runner's logger for this run.
	Logger *log.Logger
}

// ValidateAndSetDefaults checks required fields and fills in defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if o.Format == "" {
		o.Format = FormatPlantUML
	}
	return ValidateFormat(o.Format)
}

// ValidateForLoad checks the fields the load stage needs.
func (o *Options) ValidateForLoad() error {
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "manifest path is required")
	}
	return nil
}

// ValidateForExport checks the fields the export stage needs.
func (o *Options) ValidateForExport() error {
	if o.Format == "" {
		o.Format = FormatPlantUML
	}
	return ValidateFormat(o.Format)
}

// DiagramKeyOpts maps the options onto their cache key fields.
func (o Options) DiagramKeyOpts() cache.DiagramKeyOpts {
	return cache.DiagramKeyOpts{
		Format:   o.Format,
		Detailed: o.Detailed,
	}
}
