// Package templates provides the embedded bootstrap script template and its rendering.
package templates

import (
	"embed"
)

// TemplateFS holds the embedded templates.
//
//go:embed bootstrap/*
var TemplateFS embed.FS

// BootstrapTemplate is the path of the manage.py template inside TemplateFS.
const BootstrapTemplate = "bootstrap/manage.py.tmpl"

// ContribApps are the built-in framework applications every workspace enables.
var ContribApps = []string{
	"django.contrib.admin",
	"django.contrib.auth",
	"django.contrib.contenttypes",
	"django.contrib.sessions",
	"django.contrib.messages",
	"django.contrib.staticfiles",
}
