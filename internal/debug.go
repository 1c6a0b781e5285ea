package internal

import (
	"log"
	"os"
	"os/user"
	"regexp"
	"sort"
	"strings"

	"github.com/earthboundkid/versioninfo/v2"
)

var sensitiveRegex = regexp.MustCompile(`(?i)(PASSWORD|API_KEY|ACCESS_KEY|SECRET|TOKEN)`)

func ShowVersion() {
	log.Printf("Version: %s\n", versioninfo.Short())
}

// EnvironmentVars logs the environment variables starting with prefix,
// masking anything that looks like a credential.
func EnvironmentVars(prefix string) {
	log.Println("Environment variables")
	for _, line := range environmentLines(os.Environ(), prefix) {
		log.Printf("  %s\n", line)
	}
}

func environmentLines(environ []string, prefix string) []string {
	lines := make([]string, 0)
	for _, entry := range environ {
		key, value, _ := strings.Cut(entry, "=")
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if sensitiveRegex.MatchString(key) {
			value = "********"
		}
		lines = append(lines, key+": "+value)
	}
	sort.Strings(lines)
	return lines
}

func UserInfo() {
	log.Printf("PID: %d", os.Getpid())
	currentUser, err := user.Current()
	if err != nil {
		log.Printf("Error getting current user: %v", err)
	} else {
		log.Printf("User: uid=%s(%s) gid=%s", currentUser.Uid, currentUser.Username, currentUser.Gid)
	}
	if wd, err := os.Getwd(); err == nil {
		log.Printf("Working directory: %s", wd)
	}
}
