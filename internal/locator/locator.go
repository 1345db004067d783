// Package locator finds the console's resource and config folders by
// probing a fixed list of candidate paths.
package locator

import (
	"fmt"
	"log"
	"os"
	"strings"
)

type Purpose string

const (
	Resource Purpose = "resource"
	Config   Purpose = "config"
)

const appDir = "luag-console"

// Candidate is a path template with at most one %s, filled from Prefix.
// A template that needs a prefix is skipped when Prefix is empty.
type Candidate struct {
	Template string
	Prefix   string
}

func (c Candidate) path() (string, bool) {
	if !strings.Contains(c.Template, "%s") {
		return c.Template, c.Template != ""
	}
	if c.Prefix == "" {
		return "", false
	}
	return fmt.Sprintf(c.Template, c.Prefix), true
}

type NotFoundError struct {
	Purpose Purpose
}

func (e *NotFoundError) Error() string {
	return string(e.Purpose) + " folder not found"
}

// Find returns the first candidate that exists and is a directory.
func Find(purpose Purpose, candidates []Candidate) (string, error) {
	for _, c := range candidates {
		path, ok := c.path()
		if !ok {
			continue
		}
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			continue
		}
		log.Printf("found %s folder: '%s'", purpose, path)
		return path, nil
	}
	return "", &NotFoundError{Purpose: purpose}
}

// Candidates returns the probe order for purpose on goos. override, when
// set, is probed first.
func Candidates(purpose Purpose, goos string, getenv func(string) string, override string) []Candidate {
	var list []Candidate
	if override != "" {
		list = append(list, Candidate{Template: override})
	}
	switch purpose {
	case Resource:
		list = append(list, resourceCandidates(goos, getenv)...)
	case Config:
		list = append(list, configCandidates(goos, getenv)...)
	}
	return list
}

func resourceCandidates(goos string, getenv func(string) string) []Candidate {
	switch goos {
	case "windows":
		return []Candidate{
			{Template: "%s/LuaG Console/res", Prefix: getenv("PROGRAMFILES")},
			{Template: "%s/LuaG Console/res", Prefix: getenv("PROGRAMFILES(x86)")},
			{Template: "%s/LuaG Console/res", Prefix: getenv("LOCALAPPDATA")},
		}
	case "darwin":
		return []Candidate{
			{Template: "/Library/Application Support/" + appDir},
			{Template: "%s/Library/Application Support/" + appDir, Prefix: getenv("HOME")},
		}
	default:
		return []Candidate{
			{Template: "/usr/share/" + appDir},
			{Template: "/usr/local/share/" + appDir},
			{Template: "%s/.local/share/" + appDir, Prefix: getenv("HOME")},
		}
	}
}

func configCandidates(goos string, getenv func(string) string) []Candidate {
	switch goos {
	case "windows":
		return []Candidate{
			{Template: "%s/LuaG Console", Prefix: getenv("APPDATA")},
		}
	case "darwin":
		return []Candidate{
			{Template: "%s/Library/Preferences/" + appDir, Prefix: getenv("HOME")},
		}
	default:
		return []Candidate{
			{Template: "%s/" + appDir, Prefix: getenv("XDG_CONFIG_HOME")},
			{Template: "%s/.config/" + appDir, Prefix: getenv("HOME")},
		}
	}
}
