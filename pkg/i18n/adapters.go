package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"sort"
)

// TranslationAdapter loads translations keyed by language.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from an in-memory map.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FSAdapter loads every file of dir in fsys that parser supports.
// It works with embed.FS, os.DirFS and fstest.MapFS alike.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSAdapter returns an adapter over dir in fsys. An empty dir means the root.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.parser == nil || a.fsys == nil {
		return nil, ErrNilAdapter
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}
	// Later files override earlier ones, so the order must not depend on the FS.
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	all := make(map[string]map[string]any)
	for _, entry := range entries {
		if entry.IsDir() || !a.parser.SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}
		if err := a.loadFile(ctx, path.Join(a.dir, entry.Name()), all); err != nil {
			return nil, err
		}
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslations, a.dir)
	}
	return all, nil
}

func (a *FSAdapter) loadFile(ctx context.Context, name string, all map[string]map[string]any) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrLoadingCancelled, err)
	}

	content, err := fs.ReadFile(a.fsys, name)
	if err != nil {
		return errors.Join(ErrFailedToReadFile, err)
	}
	parsed, err := a.parser.Parse(ctx, content)
	if err != nil {
		return errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", name, err))
	}

	for lang, messages := range parsed {
		if all[lang] == nil {
			all[lang] = make(map[string]any)
		}
		maps.Copy(all[lang], messages)
	}
	return nil
}
