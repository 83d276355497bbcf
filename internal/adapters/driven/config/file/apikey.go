package file

import (
	"bufio"
	"os"
	"strings"

	"github.com/doclens/doclens-cli/internal/core/ports/driven"
)

// EnvAPIKey is the environment variable holding the Serper API key.
const EnvAPIKey = "SERPER_API_KEY"

// dotenvFile is the optional env file checked in the working directory.
const dotenvFile = ".env"

// ResolveAPIKey returns the Serper API key, checking the process
// environment first, then a .env file in the working directory, then
// the config store. An empty return means no key is configured.
func ResolveAPIKey(store driven.ConfigStore) string {
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key
	}
	if key := readDotenv(dotenvFile, EnvAPIKey); key != "" {
		return key
	}
	if store != nil {
		return store.GetString(KeyAPIKey)
	}
	return ""
}

// readDotenv scans a KEY=VALUE env file for one key. Blank lines and
// #-comments are skipped; surrounding quotes on the value are stripped.
// Any read problem just yields "" - the file is optional.
func readDotenv(path, want string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found || strings.TrimSpace(key) != want {
			continue
		}

		value = strings.TrimSpace(value)
		value = strings.Trim(value, `"'`)
		return value
	}
	return ""
}
