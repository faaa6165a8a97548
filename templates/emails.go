// Package templates holds the email bodies sent by the submission relay.
package templates

import "embed"

// Emails contains emails/<name>[_<lang>].html and .txt pairs
//
//go:embed emails/*.html emails/*.txt
var Emails embed.FS
