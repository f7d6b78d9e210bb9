package handler

// dataResponse is the success envelope: a single object, array, or boolean
// under "data".
type dataResponse struct {
	Data any `json:"data"`
}

// listResponse is the success envelope for paginated listings.
type listResponse struct {
	Data any          `json:"data"`
	Meta metaResponse `json:"meta"`
}

// metaResponse carries pagination metadata. Total counts every matching
// row across all pages, not the returned slice.
type metaResponse struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"current_page"`
	Size        int   `json:"size"`
}
