// Package content holds the portfolio copy shown by every renderer.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Portfolio is the full set of content for the site.
type Portfolio struct {
	Name       string       `yaml:"name"`
	Title      string       `yaml:"title"`
	Links      []Link       `yaml:"links"`
	About      Card         `yaml:"about"`
	Skills     []SkillGroup `yaml:"skills"`
	Experience []Job        `yaml:"experience"`
	Projects   []Project    `yaml:"projects"`
	Contact    Contact      `yaml:"contact"`
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
	Icon  string `yaml:"icon"`
}

type Card struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Body        string `yaml:"body"`
}

type SkillGroup struct {
	Title  string   `yaml:"title"`
	Skills []string `yaml:"skills"`
}

type Job struct {
	Title       string `yaml:"title"`
	Company     string `yaml:"company"`
	Period      string `yaml:"period"`
	Description string `yaml:"description"`
}

// Project is a showcased project. Image and Snippet are optional.
type Project struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	URL         string   `yaml:"url"`
	Image       string   `yaml:"image"`
	Thumbnail   string   `yaml:"-"`
	Snippet     *Snippet `yaml:"snippet"`
}

type Snippet struct {
	Language string `yaml:"language"`
	Code     string `yaml:"code"`
}

type Contact struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Email       string `yaml:"email"`
}

// Default returns the embedded portfolio.
func Default() Portfolio {
	p, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded content: %v", err))
	}
	return p
}

// Load reads a portfolio from a YAML file. An empty path returns Default.
func Load(path string) (Portfolio, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Portfolio{}, fmt.Errorf("read content: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates portfolio YAML.
func Parse(data []byte) (Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Portfolio{}, fmt.Errorf("parse content: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Portfolio{}, err
	}
	return p, nil
}

// Validate checks the fields every page needs.
func (p Portfolio) Validate() error {
	var errs []error
	if p.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	for i, l := range p.Links {
		if l.URL == "" {
			errs = append(errs, fmt.Errorf("links[%d]: url is required", i))
		}
	}
	for i, pr := range p.Projects {
		if pr.Name == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: name is required", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid content: %w", errors.Join(errs...))
	}
	return nil
}
