package bills

import "errors"

var (
	// ErrMissingInput indicates the request carried no extracted text.
	ErrMissingInput = errors.New("no extracted text provided")
	// ErrParse indicates the LLM response was not a valid JSON object.
	ErrParse = errors.New("extraction response is not valid JSON")
	// ErrService indicates the LLM call itself failed.
	ErrService = errors.New("extraction service failure")
	// ErrStorage indicates the document store was unreachable or rejected a write.
	ErrStorage = errors.New("document store failure")
	// ErrExport indicates the CSV export could not be written.
	ErrExport = errors.New("csv export failure")
)
