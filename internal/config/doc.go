// Package config loads the configuration consumed by the composition runtime.
//
// Configuration is read from a single directory containing config.yaml. The
// default directory is ~/.config/collabkit; commands accept --config-path to
// point somewhere else. A missing file is not an error: the defaults from
// GetDefaultConfig are used.
//
// # File Format
//
//	app:
//	  appId: cli_a1b2c3
//	  appSecret: s3cr3t
//	  baseUrl: https://open.example.com
//	features:
//	  hr: true
//	  ai: true
//	services:
//	  ai:
//	    timeout: 45s
//	    settings:
//	      model: large-v2
//	dependencies:
//	  docs: [auth]
//	logging:
//	  level: debug
//	  format: json
//
// Feature maps are merged over the defaults, so a file only lists the
// features it changes. The remaining sections replace the defaults.
//
// # Environment
//
// COLLABKIT_APP_ID, COLLABKIT_APP_SECRET and COLLABKIT_BASE_URL override the
// credentials from the file. COLLABKIT_FEATURES takes a comma separated list
// such as "ai,-hr" to toggle features.
//
// # Validation
//
// Config.Validate reports structural problems as ValidationErrors. Missing
// credentials are not a validation error.
package config
