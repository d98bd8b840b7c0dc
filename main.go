/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/killallgit/annotator-api/cmd"

// @title           Video Annotation API
// @version         1.0.0
// @description     Store videos and the time-bounded annotations attached to them
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/annotator-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:3000
// @BasePath        /
// @schemes         http https
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        x-api-key
// @description                 Shared secret configured with ANNOTATOR_AUTH_API_KEY or API_KEY
func main() {
	cmd.Execute()
}
