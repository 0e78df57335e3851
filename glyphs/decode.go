package glyphs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/letterink/glyphsource/plist"
)

// DecodeOption adjusts how a font is built from its generic tree.
type DecodeOption func(*decodeCtx)

// WithConcurrency sets the number of workers decoding glyph subtrees.
// Values below 2 keep the decode sequential; 0 picks GOMAXPROCS.
func WithConcurrency(n int) DecodeOption {
	return func(ctx *decodeCtx) {
		if n == 0 {
			n = runtime.GOMAXPROCS(0)
		}
		ctx.workers = n
	}
}

// Load reads the font source at path. Recoverable field problems are
// reported through the returned diagnostics; the error covers I/O and
// document-level syntax failures only.
func Load(path string, opts ...DecodeOption) (*Font, *Diagnostics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load font: %w", err)
	}
	tree, err := plist.Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("load font %s: %w", path, err)
	}
	font, diags, err := FromTree(tree, opts...)
	if err != nil {
		return nil, nil, err
	}
	font.filePath = path
	return font, diags, nil
}

// Parse reads a font source document from r.
func Parse(r io.Reader, opts ...DecodeOption) (*Font, *Diagnostics, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read font source: %w", err)
	}
	tree, err := plist.Parse(data)
	if err != nil {
		return nil, nil, err
	}
	return FromTree(tree, opts...)
}

// FromTree builds the typed entity graph from an already parsed tree.
func FromTree(tree *plist.Dict, opts ...DecodeOption) (*Font, *Diagnostics, error) {
	if tree == nil {
		return nil, nil, errors.New("nil document tree")
	}
	diags := &Diagnostics{}
	ctx := &decodeCtx{diags: diags}
	for _, opt := range opts {
		opt(ctx)
	}
	font := NewFont()
	decodeFields(font, fontFields, tree, ctx)
	return font, diags, nil
}

// decodeGlyphList builds the glyph entities of a font, sharding the work
// across workers when the decode context allows more than one.
func decodeGlyphList(ctx *decodeCtx, raw any) ([]*Glyph, error) {
	arr, ok := raw.(plist.Array)
	if !ok {
		return nil, coercionError("list", raw)
	}
	if ctx.workers > 1 && len(arr) > 1 {
		return decodeGlyphsParallel(ctx, arr)
	}
	return decodeList(ctx, "glyphs", raw, func() *Glyph { return NewGlyph("") }, glyphFields)
}

// decodeGlyphsParallel decodes glyph subtrees concurrently. Glyph dicts
// are independent until the font claims them, so each worker fills its
// own slot and diagnostics shard; shards merge in index order to keep
// the report deterministic.
func decodeGlyphsParallel(ctx *decodeCtx, arr plist.Array) ([]*Glyph, error) {
	glyphs := make([]*Glyph, len(arr))
	shards := make([]*Diagnostics, len(arr))

	var group errgroup.Group
	group.SetLimit(ctx.workers)
	for i, item := range arr {
		i, item := i, item // per-iteration copies; go.mod predates Go 1.22 loopvar semantics
		group.Go(func() error {
			shard := &Diagnostics{}
			sub, ok := item.(*plist.Dict)
			if !ok {
				shard.Add(ctx.path, fmt.Sprintf("glyphs[%d]", i), coercionError("dictionary", item))
				shards[i] = shard
				return nil
			}
			g := NewGlyph("")
			decodeFields(g, glyphFields, sub, &decodeCtx{
				diags: shard,
				path:  ctx.join(fmt.Sprintf("glyphs[%d]", i)),
			})
			glyphs[i] = g
			shards[i] = shard
			return nil
		})
	}
	// Workers never return errors; Wait only fences the shards.
	_ = group.Wait()

	out := make([]*Glyph, 0, len(arr))
	for i, g := range glyphs {
		ctx.diags.merge(shards[i])
		if g != nil {
			out = append(out, g)
		}
	}
	return out, nil
}
