// Package config loads the pinmon TOML configuration file.
//
// # Resolution
//
// Load uses the explicit path when one is given, otherwise
// ~/.config/pinmon/config.toml. A missing file is not an error: Default is
// returned instead, so pinmon runs without any configuration.
//
// # Format
//
//	source = "~/pintest/data.txt"
//	window_size = 10
//	max_value = 20.0
//	categories = ["0%", "50%"]
//	poll_interval = "1s"
//	backoff_factor = 5
//	watch = true
//	log_file = "~/.local/state/pinmon/pinmon.log"
//	log_level = "info"
//
// Every key is optional. Strings are trimmed, paths get tilde expansion and
// non-positive numbers fall back to defaults. poll_interval is a Go duration
// string.
//
// The session keys (source, window_size, max_value, categories) are left
// zero when absent so that flags and saved preferences can fill them;
// Config.Settings supplies the final defaults and resolves category labels.
package config
