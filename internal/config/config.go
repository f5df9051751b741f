package config

import "time"

// Config is the root application configuration.
type Config struct {
	Corpora CorporaConfig `yaml:"corpora"`
	Oxford  OxfordConfig  `yaml:"oxford"`
	Build   BuildConfig   `yaml:"build"`
	Log     LogConfig     `yaml:"log"`
}

// CorporaConfig holds the paths of the two dictionary corpora. The defaults
// match the install locations of the Debian dictd packages.
type CorporaConfig struct {
	MuellerPath  string `yaml:"mueller_path"  env:"CORPORA_MUELLER_PATH"  env-default:"/usr/share/dictd/mueller7.dict"`
	FreeDictPath string `yaml:"freedict_path" env:"CORPORA_FREEDICT_PATH" env-default:"/usr/share/dictd/freedict-eng-rus.dict"`
}

// OxfordConfig holds the listing-page settings: where the cached HTML lives,
// where to download it from when missing, and the HTTP timeout for doing so.
type OxfordConfig struct {
	HTMLPath     string        `yaml:"html_path"     env:"OXFORD_HTML_PATH"     env-default:"./oxford-3000/a.html"`
	HTMLURL      string        `yaml:"html_url"      env:"OXFORD_HTML_URL"      env-default:"https://raw.githubusercontent.com/samuraitruong/oxford-3000/master/a.html"`
	FetchTimeout time.Duration `yaml:"fetch_timeout" env:"OXFORD_FETCH_TIMEOUT" env-default:"30s"`
}

// BuildConfig holds the dataset build inputs and output.
type BuildConfig struct {
	WordListPath string `yaml:"word_list_path" env:"BUILD_WORD_LIST_PATH" env-default:"./data/oxford-3000.json"`
	OutputPath   string `yaml:"output_path"    env:"BUILD_OUTPUT_PATH"    env-default:"./data/cards.json"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
