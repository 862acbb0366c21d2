package bleve

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"
)

const (
	fieldKind  = "kind"
	fieldLabel = "label"
	fieldText  = "text"
	fieldID    = "id"
)

func IndexMapping() *mapping.IndexMappingImpl {
	mapping := bleve.NewIndexMapping()

	mapping.TypeField = "_type"
	mapping.DefaultAnalyzer = standard.Name

	itemMapping := bleve.NewDocumentMapping()

	kindFieldMapping := bleve.NewTextFieldMapping()
	kindFieldMapping.Analyzer = keyword.Name
	kindFieldMapping.Store = true
	itemMapping.AddFieldMappingsAt(fieldKind, kindFieldMapping)

	idFieldMapping := bleve.NewTextFieldMapping()
	idFieldMapping.Analyzer = keyword.Name
	idFieldMapping.Store = true
	idFieldMapping.Index = false
	itemMapping.AddFieldMappingsAt(fieldID, idFieldMapping)

	labelFieldMapping := bleve.NewTextFieldMapping()
	labelFieldMapping.Analyzer = standard.Name
	labelFieldMapping.Store = true
	labelFieldMapping.IncludeTermVectors = true
	itemMapping.AddFieldMappingsAt(fieldLabel, labelFieldMapping)

	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Analyzer = standard.Name
	textFieldMapping.Store = false
	textFieldMapping.IncludeTermVectors = true
	itemMapping.AddFieldMappingsAt(fieldText, textFieldMapping)

	mapping.AddDocumentMapping("item", itemMapping)

	return mapping
}
