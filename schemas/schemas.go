// Package schemas embeds the JSON Schemas that reference data documents
// (catalogs, locale data, messages) are checked against at load time.
package schemas

import _ "embed"

// Schema names, used to label validation errors.
const (
	CatalogName  = "catalog.schema.json"
	LocalesName  = "locales.schema.json"
	MessagesName = "messages.schema.json"
)

//go:embed catalog.schema.json
var Catalog string

//go:embed locales.schema.json
var Locales string

//go:embed messages.schema.json
var Messages string
