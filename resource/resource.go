// Package resource provides concrete core.Resource implementations backed by
// inline text and local files. Each resource answers questions over its
// content through a language model; the content itself is never interpreted
// by the solve engine.
package resource

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hupe1980/deepsolve/core"
	"github.com/hupe1980/deepsolve/lm"
)

const answerPromptFormat = `Answer the question using ONLY the document below. If the document
does not contain the needed information, say so briefly.

DOCUMENT:
%s

QUESTION:
%s`

// TextResource is a core.Resource over an inline text document.
type TextResource struct {
	name     string
	overview string
	text     string
	lm       lm.LM
}

var _ core.Resource = (*TextResource)(nil)

// NewTextResource creates a resource answering questions over the given text.
func NewTextResource(name, overview, text string, l lm.LM) *TextResource {
	return &TextResource{name: name, overview: overview, text: text, lm: l}
}

// UniqueName implements core.Resource.
func (r *TextResource) UniqueName() string { return r.name }

// Overview implements core.Resource.
func (r *TextResource) Overview() string { return r.overview }

// Answer implements core.Resource by asking the model to answer from the text.
func (r *TextResource) Answer(ctx context.Context, question string) (string, error) {
	return r.lm.Generate(ctx, fmt.Sprintf(answerPromptFormat, r.text, question))
}

// FileResource is a core.Resource over a local file's contents. The file is
// read once on first use and cached for the resource's lifetime.
type FileResource struct {
	path     string
	overview string
	lm       lm.LM

	once    sync.Once
	text    string
	loadErr error
}

var _ core.Resource = (*FileResource)(nil)

// NewFileResource creates a resource answering questions over a file. The
// file's base name serves as the unique name.
func NewFileResource(path, overview string, l lm.LM) *FileResource {
	return &FileResource{path: path, overview: overview, lm: l}
}

// UniqueName implements core.Resource.
func (r *FileResource) UniqueName() string { return filepath.Base(r.path) }

// Overview implements core.Resource.
func (r *FileResource) Overview() string { return r.overview }

// Answer implements core.Resource by asking the model to answer from the
// file's contents.
func (r *FileResource) Answer(ctx context.Context, question string) (string, error) {
	r.once.Do(func() {
		data, err := os.ReadFile(r.path)
		if err != nil {
			r.loadErr = fmt.Errorf("reading resource file %s: %w", r.path, err)
			return
		}
		r.text = string(data)
	})
	if r.loadErr != nil {
		return "", r.loadErr
	}
	return r.lm.Generate(ctx, fmt.Sprintf(answerPromptFormat, r.text, question))
}
