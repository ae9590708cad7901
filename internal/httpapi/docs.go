package httpapi

import _ "embed"

// apiDocs is the Markdown API reference served at GET /api/docs.
//
//go:embed apidocs.md
var apiDocs []byte
