// Package config provides the configuration system for pixelstorm.
//
// Configuration is layered, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← PIXELSTORM_<SECTION>_<KEY>
//	├─────────────────────────────┤
//	│  2. User Settings           │  ← ~/.config/pixelstorm/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │
//	└─────────────────────────────┘
//
// # Basic Usage
//
//	cfg, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    return err
//	}
//	doc, err := canvas.New(cfg.Canvas.Width, cfg.Canvas.Height)
//
// # File Format
//
//	[canvas]
//	width = 32
//	height = 32
//	layers = 1
//	palette = ["#000000", "#ffffff"]
//
//	[history]
//	max_entries = 1000
//
//	[log]
//	level = "info"
//	file = "pixelstorm.log"
//
//	[scripts]
//	paths = ["~/.config/pixelstorm/tools.lua"]
//	timeout_ms = 2000
//
//	[keys]
//	r = "RectFill"
//	"ctrl-z" = "Undo"
package config
