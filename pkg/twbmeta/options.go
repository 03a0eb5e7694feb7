// Package twbmeta extracts deep metadata from Tableau workbook documents.
package twbmeta

// Mode represents the extraction mode.
type Mode string

const (
	// ModeLight skips narrative text, datasource connection detail and
	// layout geometry.
	ModeLight Mode = "light"
	// ModeStandard extracts everything the canonical document carries.
	ModeStandard Mode = "standard"
	// ModeVerbose additionally copies source zone ids onto layout
	// containers for debugging cross-references against the raw document.
	ModeVerbose Mode = "verbose"
)

// Options configures extraction behavior.
type Options struct {
	// Mode specifies the extraction mode (light, standard, verbose).
	Mode Mode
	// WorkbookName names the workbook when parsing raw bytes. ParseFile
	// derives it from the file stem when left empty.
	WorkbookName string
	// IncludeNarratives specifies whether story narrative text is
	// extracted. If nil, defaults to false for light mode, true otherwise.
	IncludeNarratives *bool
	// IncludeConnections specifies whether datasource connection detail is
	// extracted. If nil, defaults to false for light mode, true otherwise.
	IncludeConnections *bool
	// MaxLayoutDepth bounds the dashboard layout walk; zero uses the
	// parser default.
	MaxLayoutDepth int
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeStandard,
	}
}

// ShouldIncludeNarratives returns whether story narrative text is extracted.
func (o Options) ShouldIncludeNarratives() bool {
	if o.IncludeNarratives != nil {
		return *o.IncludeNarratives
	}
	return o.Mode != ModeLight
}

// ShouldIncludeConnections returns whether connection detail is extracted.
func (o Options) ShouldIncludeConnections() bool {
	if o.IncludeConnections != nil {
		return *o.IncludeConnections
	}
	return o.Mode != ModeLight
}

// ShouldIncludeGeometry returns whether layout geometry is extracted.
func (o Options) ShouldIncludeGeometry() bool {
	return o.Mode != ModeLight
}

// ShouldIncludeZoneIDs returns whether source zone ids are copied onto
// layout containers.
func (o Options) ShouldIncludeZoneIDs() bool {
	return o.Mode == ModeVerbose
}
