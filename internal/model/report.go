package model

// AssetRecord pairs a media file found in a scene with the copy made of it.
type AssetRecord struct {
	Source      Path   // original absolute path found in the document
	Destination Path   // file written inside the assets directory
	Reference   string // replacement value written into the document
}

// DocumentResult holds the outcome of rewriting a single scene file.
type DocumentResult struct {
	Document Path
	Assets   []AssetRecord
	Written  bool // false for dry runs
}

// BuildSummary collects the per-document results of one run.
type BuildSummary struct {
	Root      Path
	AssetsDir Path
	Documents []DocumentResult
}

// AssetCount returns the total number of assets copied across documents.
func (s BuildSummary) AssetCount() int {
	total := 0
	for _, doc := range s.Documents {
		total += len(doc.Assets)
	}

	return total
}
