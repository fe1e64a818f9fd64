///////////////////////////////////////////////////////////////////////////////////////////////////
//                                                                                               //
//                                                                                               //
//         oooooo   oooooo     oooo           oooooo   oooooo     oooo         .o8               //
//          `888.    `888.     .8'             `888.    `888.     .8'         "888               //
//           `888.   .8888.   .8' oooo    ooo   `888.   .8888.   .8' .ooooo.   888oooo.          //
//            `888  .8'`888. .8'   `88.  .8'     `888  .8'`888. .8' d88' `88b  d88' `88b         //
//             `888.8'  `888.8'     `88..8'       `888.8'  `888.8'  888ooo888  888   888         //
//              `888'    `888'       `888'         `888'    `888'   888    .o  888   888         //
//               `8'      `8'         .8'           `8'      `8'    `Y8bod8P'  `Y8bod8P'         //
//                                .o..P'                                                         //
//                                `Y8P'                                                          //
//                                                                                               //
//                                                                                               //
//                              Copyright (C) 2024  Wyatt Sheffield                              //
//                                                                                               //
//                 This program is free software: you can redistribute it and/or                 //
//                 modify it under the terms of the GNU General Public License as                //
//                 published by the Free Software Foundation, either version 3 of                //
//                      the License, or (at your option) any later version.                      //
//                                                                                               //
//                This program is distributed in the hope that it will be useful,                //
//                 but WITHOUT ANY WARRANTY; without even the implied warranty of                //
//                 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the                 //
//                          GNU General Public License for more details.                         //
//                                                                                               //
//                   You should have received a copy of the GNU General Public                   //
//                         License along with this program.  If not, see                         //
//                                <https://www.gnu.org/licenses/>.                               //
//                                                                                               //
//                                                                                               //
///////////////////////////////////////////////////////////////////////////////////////////////////

package wiki

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"

	"wyweb.site/medialist/medialist"
)

var (
	ErrInvalidConfig = errors.New("invalid wiki configuration")
	ErrPageNotFound  = errors.New("page not found")
	ErrAccessDenied  = errors.New("access denied")
)

var authLevels = map[string]medialist.AuthLevel{
	"none":   medialist.AuthNone,
	"read":   medialist.AuthRead,
	"edit":   medialist.AuthEdit,
	"create": medialist.AuthCreate,
	"upload": medialist.AuthUpload,
	"delete": medialist.AuthDelete,
	"admin":  medialist.AuthAdmin,
}

func levelNames() []any {
	out := make([]any, 0, len(authLevels))
	for name := range authLevels {
		out = append(out, name)
	}
	return out
}

// normalizeName makes level and format names case insensitive.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ParseAuthLevel maps a level name from the configuration file to its AuthLevel.
func ParseAuthLevel(name string) (medialist.AuthLevel, error) {
	level, ok := authLevels[normalizeName(name)]
	if !ok {
		return medialist.AuthNone, fmt.Errorf("unknown access level %q", name)
	}
	return level, nil
}

type ACLRule struct {
	Pattern string `yaml:"pattern"`
	Level   string `yaml:"level"`
}

func (r ACLRule) Validate() error {
	r.Level = normalizeName(r.Level)
	return validation.ValidateStruct(&r,
		validation.Field(&r.Pattern, validation.Required, validation.By(func(value any) error {
			_, err := glob.Compile(value.(string), ':')
			return err
		})),
		validation.Field(&r.Level, validation.Required, validation.In(levelNames()...)),
	)
}

type LogConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

func (c LogConfig) Validate() error {
	c.Level = normalizeName(c.Level)
	c.Format = normalizeName(c.Format)
	return validation.ValidateStruct(&c,
		validation.Field(&c.Level, validation.In("trace", "debug", "info", "warn", "warning", "error", "fatal")),
		validation.Field(&c.Format, validation.In("json", "console", "pretty")),
	)
}

type Config struct {
	DataDir  string `yaml:"data_dir,omitempty"`
	PageDir  string `yaml:"page_dir,omitempty"`
	MediaDir string `yaml:"media_dir,omitempty"`
	MediaURL string `yaml:"media_url,omitempty"`
	Target   struct {
		Media string `yaml:"media,omitempty"`
	} `yaml:"target,omitempty"`
	DefaultACL  string    `yaml:"default_acl,omitempty"`
	ACL         []ACLRule `yaml:"acl,omitempty"`
	SearchDepth int       `yaml:"search_depth,omitempty"`
	Log         LogConfig `yaml:"log,omitempty"`
	Highlight   struct {
		Style string `yaml:"style,omitempty"`
	} `yaml:"highlight,omitempty"`
	TOC bool `yaml:"toc,omitempty"`
}

func (c *Config) applyDefaults() {
	if c.DataDir == "" {
		c.DataDir = "."
	}
	if c.PageDir == "" {
		c.PageDir = filepath.Join(c.DataDir, "pages")
	}
	if c.MediaDir == "" {
		c.MediaDir = filepath.Join(c.DataDir, "media")
	}
	if c.MediaURL == "" {
		c.MediaURL = "/_media/"
	}
	if c.DefaultACL == "" {
		c.DefaultACL = "read"
	}
	if c.SearchDepth == 0 {
		c.SearchDepth = 1
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Highlight.Style == "" {
		c.Highlight.Style = "monokai"
	}
}

func (c Config) Validate() error {
	c.DefaultACL = normalizeName(c.DefaultACL)
	err := validation.ValidateStruct(&c,
		validation.Field(&c.PageDir, validation.Required),
		validation.Field(&c.MediaDir, validation.Required),
		validation.Field(&c.MediaURL, validation.Required),
		validation.Field(&c.DefaultACL, validation.Required, validation.In(levelNames()...)),
		validation.Field(&c.ACL),
		validation.Field(&c.SearchDepth, validation.Min(1)),
		validation.Field(&c.Log),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) mediaListConfig() medialist.Config {
	return medialist.Config{
		MediaDir:    c.MediaDir,
		MediaTarget: c.Target.Media,
		SearchDepth: c.SearchDepth,
	}
}

// LoadConfig reads a YAML configuration file. Relative directories are taken relative to the
// directory holding the file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	base := filepath.Dir(path)
	for _, dir := range []*string{&cfg.DataDir, &cfg.PageDir, &cfg.MediaDir} {
		if *dir != "" && !filepath.IsAbs(*dir) {
			*dir = filepath.Join(base, *dir)
		}
	}
	if cfg.DataDir == "" {
		cfg.DataDir = base
	}
	cfg.applyDefaults()
	return cfg, cfg.Validate()
}
