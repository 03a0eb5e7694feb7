package parser

import (
	"fmt"

	"github.com/metagraph-io/twbmeta/pkg/twbmeta/models"
)

// Diagnostics accumulates recoverable parse conditions across one parse.
// It is not safe for concurrent use; one parse owns one sink.
type Diagnostics struct {
	list []models.Diagnostic
}

// Warnf records a warning diagnostic against the given entity path.
func (d *Diagnostics) Warnf(code models.DiagnosticCode, entity, format string, args ...any) {
	d.add(code, models.SeverityWarning, entity, format, args...)
}

// Infof records an informational diagnostic against the given entity path.
func (d *Diagnostics) Infof(code models.DiagnosticCode, entity, format string, args ...any) {
	d.add(code, models.SeverityInfo, entity, format, args...)
}

func (d *Diagnostics) add(code models.DiagnosticCode, sev models.Severity, entity, format string, args ...any) {
	if d == nil {
		return
	}
	d.list = append(d.list, models.Diagnostic{
		Code:     code,
		Severity: sev,
		Entity:   entity,
		Message:  fmt.Sprintf(format, args...),
	})
}

// List returns the accumulated diagnostics in recording order.
func (d *Diagnostics) List() []models.Diagnostic {
	if d == nil {
		return nil
	}
	return d.list
}
