package scaffold

import (
	"fmt"
	"strings"
)

// UserAgentEnv is set by npm, yarn, pnpm and bun for the processes they spawn.
const UserAgentEnv = "npm_config_user_agent"

type PackageManager string

const (
	NPM  PackageManager = "npm"
	Yarn PackageManager = "yarn"
	PNPM PackageManager = "pnpm"
	Bun  PackageManager = "bun"
)

// PackageManagers lists every supported manager.
var PackageManagers = []PackageManager{NPM, Yarn, PNPM, Bun}

// DetectPackageManager picks the manager named in a user agent string.
// yarn, pnpm and bun are checked in that order and the first match wins;
// anything else, including an empty string, is npm.
func DetectPackageManager(userAgent string) PackageManager {
	switch {
	case strings.Contains(userAgent, "yarn"):
		return Yarn
	case strings.Contains(userAgent, "pnpm"):
		return PNPM
	case strings.Contains(userAgent, "bun"):
		return Bun
	default:
		return NPM
	}
}

// ParsePackageManager validates a manager name given on the command line or in config.
func ParsePackageManager(s string) (PackageManager, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, pm := range PackageManagers {
		if string(pm) == name {
			return pm, nil
		}
	}
	return "", fmt.Errorf("unknown package manager %q: must be one of %v", s, PackageManagers)
}

// ResolvePackageManager prefers the CLI value, then the configured one, then
// whatever the user agent says.
func ResolvePackageManager(cli, configured, userAgent string) (PackageManager, error) {
	if strings.TrimSpace(cli) != "" {
		return ParsePackageManager(cli)
	}
	if strings.TrimSpace(configured) != "" {
		return ParsePackageManager(configured)
	}
	return DetectPackageManager(userAgent), nil
}

// CreateCommand builds the create-next-app invocation for pm.
func CreateCommand(pm PackageManager, project string) (name string, args []string) {
	switch pm {
	case Yarn, PNPM, Bun:
		return string(pm), []string{"create", "next-app", project}
	default:
		return "npx", []string{"create-next-app@latest", project}
	}
}
