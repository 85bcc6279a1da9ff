package openapi

// DocumentStats summarizes the size of a Document.
type DocumentStats struct {
	PathCount      int `json:"path_count"`
	OperationCount int `json:"operation_count"`
	SchemaCount    int `json:"schema_count"`
	TagCount       int `json:"tag_count"`
}

// Stats counts paths, operations, component schemas and tags.
func (d *Document) Stats() DocumentStats {
	if d == nil {
		return DocumentStats{}
	}
	stats := DocumentStats{
		PathCount: d.Paths.Len(),
		TagCount:  len(d.Tags),
	}
	for _, item := range d.Paths.All() {
		stats.OperationCount += item.Len()
	}
	if d.Components != nil {
		stats.SchemaCount = d.Components.Schemas.Len()
	}
	return stats
}
