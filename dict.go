package yomikata

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"golang.org/x/sync/errgroup"
)

// Asset names the core requests from its provider.
const (
	WordDictAsset      = "word-dict.txt"
	WordDictIndexAsset = "word-dict-index.txt"
	PitchAccentsAsset  = "pitch-accents.txt"
	DeinflectAsset     = "deinflect.txt"
)

// AssetProvider supplies raw asset bytes. The core never fetches anything on
// its own; the provider decides whether bytes come from disk, the network or
// an embedded filesystem.
type AssetProvider interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// DirProvider reads assets from a filesystem directory.
type DirProvider struct {
	Dir string
}

func (p DirProvider) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(filepath.Join(p.Dir, name))
}

// DefaultDirProvider reads assets from the yomikata directory under the
// user's XDG data home.
func DefaultDirProvider() DirProvider {
	return DirProvider{Dir: filepath.Join(xdg.DataHome, "yomikata")}
}

// FSProvider reads assets from any fs.FS, typically an embed.FS.
type FSProvider struct {
	FS fs.FS
}

func (p FSProvider) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return fs.ReadFile(p.FS, name)
}

// Dictionaries is the immutable, loaded-once bundle of everything a search
// needs: the packed dictionary blob, its sorted index, the deinflection rule
// table and the pitch-accent table. All fields are read-only after Load
// returns, so the bundle is safe for concurrent searches without locking.
type Dictionaries struct {
	dict    string
	index   IndexTable
	reasons []string
	groups  []RuleGroup
	pitch   PitchTable
}

// Load fetches and decodes all four assets and assembles the bundle. The
// dictionary blob and its index are fetched concurrently and jointly awaited;
// the deinflection and pitch data load in parallel with that pair. Any
// failure is fatal to the lookup feature and is reported wrapped in
// ErrDictionaryUnavailable; the core does not retry.
func Load(ctx context.Context, provider AssetProvider) (*Dictionaries, error) {
	var d Dictionaries

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		dict, index, err := LoadWordDict(ctx, provider)
		if err != nil {
			return err
		}
		d.dict = dict
		d.index = index
		return nil
	})
	g.Go(func() error {
		reasons, groups, err := LoadDeinflectionData(ctx, provider)
		if err != nil {
			return err
		}
		d.reasons = reasons
		d.groups = groups
		return nil
	})
	g.Go(func() error {
		pitch, err := LoadPitchData(ctx, provider)
		if err != nil {
			return err
		}
		d.pitch = pitch
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDictionaryUnavailable, err)
	}

	Logger.Debug().
		Int("dict_bytes", len(d.dict)).
		Int("index_keys", len(d.index)).
		Int("rule_groups", len(d.groups)).
		Int("pitch_records", len(d.pitch)).
		Msg("dictionaries loaded")
	return &d, nil
}

// LoadWordDict fetches the packed dictionary and its sorted index, fetching
// both concurrently. Line endings of the dictionary blob are normalized to a
// single LF byte before anything else because index offsets are byte-exact.
func LoadWordDict(ctx context.Context, provider AssetProvider) (string, IndexTable, error) {
	var dictRaw, indexRaw []byte

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		dictRaw, err = provider.Fetch(ctx, WordDictAsset)
		if err != nil {
			return fmt.Errorf("failed to fetch %s: %w", WordDictAsset, err)
		}
		return nil
	})
	g.Go(func() (err error) {
		indexRaw, err = provider.Fetch(ctx, WordDictIndexAsset)
		if err != nil {
			return fmt.Errorf("failed to fetch %s: %w", WordDictIndexAsset, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return "", nil, err
	}

	dict := normalizeLineEndings(string(dictRaw))
	index := parseIndex(normalizeLineEndings(string(indexRaw)))
	return dict, index, nil
}

// LoadDeinflectionData fetches and parses the deinflection rule table.
func LoadDeinflectionData(ctx context.Context, provider AssetProvider) ([]string, []RuleGroup, error) {
	raw, err := provider.Fetch(ctx, DeinflectAsset)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch %s: %w", DeinflectAsset, err)
	}
	reasons, groups := ParseDeinflectionData(string(raw))
	return reasons, groups, nil
}

// LoadPitchData fetches and parses the pitch-accent table.
func LoadPitchData(ctx context.Context, provider AssetProvider) (PitchTable, error) {
	raw, err := provider.Fetch(ctx, PitchAccentsAsset)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", PitchAccentsAsset, err)
	}
	return parsePitchTable(normalizeLineEndings(string(raw))), nil
}
