package config

import (
	"fmt"
	"io/ioutil"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"
)

const DefaultAgent = "Unresolver/1.0"

// Config collects everything a scan run needs. It is immutable once a
// run starts; flags from the CLI are merged before Validate.
type Config struct {
	// per probe network timeout in seconds
	Timeout int `yaml:"timeout"`
	// probe external urls at all
	CheckExternal bool `yaml:"checkexternal"`
	// worker pool size for external probes
	Concurrency int `yaml:"concurrency"`
	// root dir for absolute local references, empty means parent dir fallback
	SiteRoot string `yaml:"siteroot"`
	// directory index candidates, in order
	IndexFiles []string `yaml:"indexfiles"`
	// user agent sent with external probes
	Agent string `yaml:"agent"`
	// skip external urls our agent is disallowed for
	RespectRobots bool `yaml:"respectrobots"`
	// address of the companion ui server
	Addr string `yaml:"address"`
}

func Default() *Config {
	return &Config{
		Timeout:       5,
		CheckExternal: true,
		Concurrency:   8,
		IndexFiles:    []string{"index.html", "index.htm"},
		Agent:         DefaultAgent,
		Addr:          ":8000",
	}
}

func Load(yamlBytes []byte) (conf *Config, err error) {
	conf = Default()
	errUnmarshal := yaml.Unmarshal(yamlBytes, conf)
	if errUnmarshal != nil {
		return nil, errUnmarshal
	}
	return conf, conf.Validate()
}

func Get(filename string) (conf *Config, err error) {
	yamlBytes, errRead := ioutil.ReadFile(filename)
	if errRead != nil {
		return nil, errRead
	}
	return Load(yamlBytes)
}

func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid timeout %d, must be a positive number of seconds", c.Timeout)
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("invalid concurrency %d, must be positive", c.Concurrency)
	}
	if len(c.IndexFiles) == 0 {
		return fmt.Errorf("index file list must not be empty")
	}
	for _, name := range c.IndexFiles {
		if strings.ContainsAny(name, "/\\") || name == "" {
			return fmt.Errorf("invalid index file name %q", name)
		}
	}
	if c.Agent == "" {
		c.Agent = DefaultAgent
	}
	return nil
}

func (c *Config) ProbeTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// SetIndexFiles parses the comma separated --index-files flag value.
func (c *Config) SetIndexFiles(list string) {
	names := []string{}
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	c.IndexFiles = names
}
