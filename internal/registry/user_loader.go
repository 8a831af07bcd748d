package registry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/log"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/themes"
)

// UserThemesDir returns ~/.config/nextgen-theme/themes, or "" when the home
// directory cannot be determined.
func UserThemesDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "nextgen-theme", "themes")
}

// LoadUserThemes loads themes from a user directory. A missing directory (or
// a path that is not a directory) yields no themes and no error.
func LoadUserThemes(dir string) ([]*Theme, error) {
	if dir == "" {
		return nil, nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn(log.CatRegistry, "cannot read user theme dir", "dir", dir, "error", err.Error())
		}
		return nil, nil
	}
	if !info.IsDir() {
		log.Warn(log.CatRegistry, "user theme path is not a directory", "dir", dir)
		return nil, nil
	}

	return Load(os.DirFS(dir), ".", SourceUser)
}

// LoadBuiltIn loads the embedded themes.
func LoadBuiltIn() ([]*Theme, error) {
	return Load(themes.FS(), themes.Dir, SourceBuiltIn)
}

// LoadDefault builds a registry from the built-in themes plus the themes in
// userDir. User themes replace built-ins with the same slug.
func LoadDefault(userDir string) (*Registry, error) {
	builtIn, err := LoadBuiltIn()
	if err != nil {
		return nil, fmt.Errorf("load built-in themes: %w", err)
	}
	user, err := LoadUserThemes(userDir)
	if err != nil {
		return nil, fmt.Errorf("load user themes: %w", err)
	}

	reg := New(append(builtIn, user...)...)
	log.Info(log.CatRegistry, "registry loaded", "themes", reg.Len(), "builtin", len(builtIn), "user", len(user))
	return reg, nil
}
