package mail

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/dtroode/auth-server/internal/model"
)

// DefaultLanguage is used when no template exists for the requested one.
const DefaultLanguage = "en"

//go:embed templates
var defaultTemplates embed.FS

var subjects = map[string]map[model.EmailSubject]string{
	"en": {
		model.EmailSubjectConfirmation:            "Confirm your email",
		model.EmailSubjectResetPassword:           "Reset your password",
		model.EmailSubjectSuccessfulPasswordReset: "Your password has been changed",
	},
	"ua": {
		model.EmailSubjectConfirmation:            "Підтвердження електронної адреси",
		model.EmailSubjectResetPassword:           "Зміна пароля",
		model.EmailSubjectSuccessfulPasswordReset: "Пароль змінено",
	},
}

func templateKey(language string, subject model.EmailSubject) string {
	return path.Join(language, string(subject)+".html")
}

func subjectLine(language string, subject model.EmailSubject) string {
	if s, ok := subjects[language][subject]; ok {
		return s
	}
	if s, ok := subjects[DefaultLanguage][subject]; ok {
		return s
	}
	return string(subject)
}

// loadTemplate looks up a template in the object store first and in the
// embedded defaults second, for the requested language and then for
// DefaultLanguage.
func (m *Mailer) loadTemplate(ctx context.Context, language string, subject model.EmailSubject) (string, error) {
	languages := []string{strings.ToLower(language)}
	if languages[0] != DefaultLanguage {
		languages = append(languages, DefaultLanguage)
	}

	for _, lang := range languages {
		key := templateKey(lang, subject)

		if m.storage != nil {
			body, err := m.fromStorage(ctx, key)
			if err == nil {
				return body, nil
			}
			if !errors.Is(err, model.ErrNotFound) {
				m.logger.Warn("Mailer: template storage unavailable, using defaults",
					"key", key,
					"error", err.Error())
			}
		}

		data, err := fs.ReadFile(defaultTemplates, path.Join("templates", key))
		if err == nil {
			return string(data), nil
		}
	}

	return "", fmt.Errorf("no template for %s", subject)
}

func (m *Mailer) fromStorage(ctx context.Context, key string) (string, error) {
	rc, err := m.storage.Download(ctx, key)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("failed to read template: %w", err)
	}
	return string(data), nil
}

// SeedTemplates uploads embedded templates that are missing from storage.
func SeedTemplates(ctx context.Context, storage model.Storage) (int, error) {
	uploaded := 0
	err := fs.WalkDir(defaultTemplates, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		key := strings.TrimPrefix(p, "templates/")

		exists, err := storage.Exists(ctx, key)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}

		f, err := defaultTemplates.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := storage.Upload(ctx, key, f); err != nil {
			return err
		}
		uploaded++
		return nil
	})
	if err != nil {
		return uploaded, fmt.Errorf("failed to seed templates: %w", err)
	}
	return uploaded, nil
}
