package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Corpora.MuellerPath == "" {
		return fmt.Errorf("corpora.mueller_path must not be empty")
	}
	if c.Corpora.FreeDictPath == "" {
		return fmt.Errorf("corpora.freedict_path must not be empty")
	}
	if c.Build.WordListPath == "" {
		return fmt.Errorf("build.word_list_path must not be empty")
	}
	if c.Build.OutputPath == "" {
		return fmt.Errorf("build.output_path must not be empty")
	}
	if c.Oxford.HTMLPath == "" {
		return fmt.Errorf("oxford.html_path must not be empty")
	}
	if c.Oxford.HTMLURL == "" {
		return fmt.Errorf("oxford.html_url must not be empty")
	}
	if c.Oxford.FetchTimeout <= 0 {
		return fmt.Errorf("oxford.fetch_timeout must be > 0 (got %v)", c.Oxford.FetchTimeout)
	}
	return nil
}
