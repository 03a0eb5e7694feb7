package models

// Connection captures the connection attributes of a data source.
type Connection struct {
	// Class is the connection driver class (e.g. "sqlserver").
	Class *string `json:"class,omitempty"`
	// Server is the database host, if declared.
	Server *string `json:"server,omitempty"`
	// DBName is the database name, if declared.
	DBName *string `json:"dbname,omitempty"`
	// Schema is the schema name, if declared.
	Schema *string `json:"schema,omitempty"`
}

// DataSource describes one workbook-level data source. Calculated fields and
// filters reference data sources by name only; a missing name is a
// classification result, never a failure.
type DataSource struct {
	// Name is the data source name.
	Name string `json:"name"`
	// Caption is the display caption, if any.
	Caption *string `json:"caption,omitempty"`
	// Inline reports whether the source is embedded in the workbook.
	Inline bool `json:"inline"`
	// Connection holds connection detail when present and requested.
	Connection *Connection `json:"connection,omitempty"`
	// CalculatedFields defined at the datasource level, in document order.
	// Worksheet-level usage references these by name.
	CalculatedFields []CalculatedField `json:"calculatedFields,omitempty"`
}

// ParameterValue is one allowed key/value alias of a parameter.
type ParameterValue struct {
	// Key is the stored value.
	Key string `json:"key"`
	// Value is the displayed alias.
	Value string `json:"value"`
}

// Parameter describes one workbook parameter, referenced by name from
// calculated fields and parameter actions.
type Parameter struct {
	// Name is the parameter name with bracket quoting removed.
	Name string `json:"name"`
	// Caption is the display caption, if any.
	Caption *string `json:"caption,omitempty"`
	// Datatype is the declared data type, if any.
	Datatype *string `json:"datatype,omitempty"`
	// Value is the current value, if declared.
	Value *string `json:"value,omitempty"`
	// AllowedValues lists declared alias values, in document order.
	AllowedValues []ParameterValue `json:"allowedValues,omitempty"`
}
