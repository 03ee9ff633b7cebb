// Package docs provides generated OpenAPI documentation.
//
// Rawi API
//
//	@title			Rawi API
//	@version		1.0
//	@description	Segmentation pipeline API for ingesting and extracting paginated Arabic text collections.
//
//	@contact.name	API Support
//	@contact.url	https://github.com/hadithlab/rawi
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
package docs

//go:generate swag init -g ../cmd/rawi/serve.go -o ./swagger --parseDependency --parseInternal
