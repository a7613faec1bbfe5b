// Package constants contains values shared across layers.
package constants

// Runtime environments
const (
	EnvDevelop    = "develop"
	EnvLocal      = "local"
	EnvProduction = "production"
)

// PubSub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Route prefixes
const (
	RouteDownload = "/download/"
	RouteAPI      = "/api"
)

// MultipartFileField is the form field carrying the uploaded file.
const MultipartFileField = "file"
