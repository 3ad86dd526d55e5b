package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver locates the config directory and the dictionary source
// independently of the working directory the binary was started from.
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
}

// NewPathResolver creates a resolver rooted at the running executable.
func NewPathResolver() (*PathResolver, error) {
	execDir, err := GetExecutableDir()
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: execDir,
		homeDir:       homeDir,
		configDir:     getConfigDir(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", execDir, pr.configDir)
	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "katik")
		}
		return filepath.Join(homeDir, ".config", "katik")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "katik")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "katik")
	default:
		return filepath.Join(homeDir, ".config", "katik")
	}
}

// DictionaryCandidates lists, in order of preference, where a dictionary named
// by the user may live: as given, next to the executable, in its data/ dir,
// and in the config dir.
func (pr *PathResolver) DictionaryCandidates(userPath string) []string {
	if filepath.IsAbs(userPath) {
		return []string{userPath}
	}
	candidates := []string{userPath}
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, userPath))
	}
	return append(candidates,
		filepath.Join(pr.executableDir, userPath),
		filepath.Join(pr.executableDir, "data", userPath),
		filepath.Join(pr.configDir, userPath),
	)
}

// ResolveDictionary returns the first existing candidate, or userPath itself
// so that the caller reports the path the user asked for.
func (pr *PathResolver) ResolveDictionary(userPath string) string {
	for _, candidate := range pr.DictionaryCandidates(userPath) {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			log.Debugf("Found dictionary: %s", candidate)
			return candidate
		}
		log.Debugf("Dictionary candidate not found: %s", candidate)
	}
	return userPath
}

// GetConfigDir returns the config directory
func (pr *PathResolver) GetConfigDir() string {
	return pr.configDir
}
