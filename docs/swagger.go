// Package docs Volta CMS API
//
// @title  Volta CMS API
// @version 0.1.0
// @description Content management backend for the Volta marketing website.
// @host      localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
package docs

import (
	_ "volta-cms/cmd/server/handlers/httperr"
	_ "volta-cms/internal/services/auth"
	_ "volta-cms/internal/services/sections"
	_ "volta-cms/internal/services/settings"
	_ "volta-cms/internal/services/users"
)
