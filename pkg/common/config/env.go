package config

import (
	"os"
	"strings"
)

// resolveSecrets fills keys from their *_env variables and substitutes ${VAR} references.
func (c *Config) resolveSecrets() {
	c.Blockfrost.BaseURL = substituteEnvVars(c.Blockfrost.BaseURL)
	c.Blockfrost.ProjectID = substituteEnvVars(c.Blockfrost.ProjectID)
	if c.Blockfrost.ProjectID == "" && c.Blockfrost.ProjectIDEnv != "" {
		c.Blockfrost.ProjectID = os.Getenv(c.Blockfrost.ProjectIDEnv)
	}

	c.Koios.BaseURL = substituteEnvVars(c.Koios.BaseURL)
	c.Koios.APIToken = substituteEnvVars(c.Koios.APIToken)
	if c.Koios.APIToken == "" && c.Koios.APITokenEnv != "" {
		c.Koios.APIToken = os.Getenv(c.Koios.APITokenEnv)
	}

	c.NATS.URL = substituteEnvVars(c.NATS.URL)
	c.NATS.Password = substituteEnvVars(c.NATS.Password)
}

// substituteEnvVars expands ${VAR} references once, left to right.
// Expanded values are not scanned again.
func substituteEnvVars(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	for {
		start := strings.Index(s, "${")
		if start == -1 {
			break
		}
		end := strings.Index(s[start:], "}")
		if end == -1 {
			break
		}
		end += start
		b.WriteString(s[:start])
		b.WriteString(os.Getenv(s[start+2 : end]))
		s = s[end+1:]
	}
	b.WriteString(s)
	return b.String()
}
