package api

import "embed"

//go:embed templates/dashboard.html
var templatesFS embed.FS
