package parser

import (
	"github.com/metagraph-io/twbmeta/pkg/twbmeta/models"
)

// parametersDatasourceName is the synthetic datasource Tableau uses to hold
// workbook parameters; it is not a real data source.
const parametersDatasourceName = "Parameters"

// ExtractDataSources collects the workbook-level data sources declared under
// the top-level datasources element, in document order, including their
// datasource-scoped calculated fields. The synthetic Parameters datasource is
// skipped. Connection detail is copied only when includeConnection is set.
func ExtractDataSources(root *Element, includeConnection bool) []models.DataSource {
	container := root.Child("datasources")
	if container == nil {
		return nil
	}
	var sources []models.DataSource
	for _, el := range container.ChildrenNamed("datasource") {
		name, ok := el.Attr("name")
		if !ok || name == "" || name == parametersDatasourceName {
			continue
		}
		ds := models.DataSource{
			Name:    name,
			Caption: el.AttrPtr("caption"),
			Inline:  el.AttrDefault("inline", "") == "true",
		}
		ds.CalculatedFields = ExtractCalculatedFields(el)
		if includeConnection {
			if conn := el.Find("connection"); conn != nil {
				ds.Connection = &models.Connection{
					Class:  conn.AttrPtr("class"),
					Server: conn.AttrPtr("server"),
					DBName: conn.AttrPtr("dbname"),
					Schema: conn.AttrPtr("schema"),
				}
			}
		}
		sources = append(sources, ds)
	}
	return sources
}

// ExtractParameters collects every parameter declaration in the workbook, in
// document order, including declared alias values.
func ExtractParameters(root *Element) []models.Parameter {
	var params []models.Parameter
	for _, el := range root.FindAll("parameter") {
		name, ok := el.Attr("name")
		if !ok || name == "" {
			continue
		}
		p := models.Parameter{
			Name:     CleanFieldName(name),
			Caption:  el.AttrPtr("caption"),
			Datatype: el.AttrPtr("datatype"),
			Value:    el.AttrPtr("value"),
		}
		for _, alias := range el.FindAll("alias") {
			key, okKey := alias.Attr("key")
			value, okValue := alias.Attr("value")
			if okKey && okValue {
				p.AllowedValues = append(p.AllowedValues, models.ParameterValue{Key: key, Value: value})
			}
		}
		params = append(params, p)
	}
	return params
}
