// Package config manages user-level settings stored at
// ~/.cloud-function-framework/config.yaml. Every key can be overridden through a
// CFF_<KEY> environment variable. Settings are checked against an embedded
// JSON Schema before they are used to render a project.
package config
