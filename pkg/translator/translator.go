package translator

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

//go:embed translation/*.toml
var embedded embed.FS

type Config struct {
	// TranslationFolder overrides the bundled translations when set.
	TranslationFolder  string
	SupportedLanguages []string // List of supported languages
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	if cfg.TranslationFolder == "" {
		loadFS(embedded, "translation")
		return
	}

	// List files in the translation folder
	lstFiles, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, f := range lstFiles {
		if f.IsDir() {
			continue
		}
		filepath := fmt.Sprintf("%s/%s", cfg.TranslationFolder, f.Name())

		_, err := Translator.LoadMessageFile(filepath)
		if err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}
}

func loadFS(fsys fs.FS, dir string) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		zap.L().Error("failed to list embedded translations", zap.Error(err))
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := path.Join(dir, entry.Name())
		if _, err := Translator.LoadMessageFileFS(fsys, name); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", entry.Name()), zap.Error(err))
		}
	}
}
