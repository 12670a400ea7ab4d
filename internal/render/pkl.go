// Package render turns a pkl template source into the JSON template body the
// deployment service accepts.
package render

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/apple/pkl-go/pkl"
)

// Renderer evaluates a template file into a wire-format document.
type Renderer interface {
	Render(ctx context.Context, templatePath string) (string, error)
}

// PklRenderer evaluates pkl modules with a project evaluator rooted at the
// template's directory, so amended projects and local imports resolve the
// same way they do under `pkl eval --project-dir`.
type PklRenderer struct {
	// Format is the pkl output format. Defaults to json, the template body
	// format the deployment service parses.
	Format string
}

func (r *PklRenderer) format() string {
	if r.Format == "" {
		return "json"
	}
	return r.Format
}

// Render evaluates the template and returns the rendered document. An
// evaluation failure is fatal and the evaluator's message is passed through
// unmodified so the operator sees the template error as pkl reported it.
func (r *PklRenderer) Render(ctx context.Context, templatePath string) (string, error) {
	abs, err := filepath.Abs(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve template path %s: %w", templatePath, err)
	}

	projectDir, err := url.Parse("file://" + filepath.Dir(abs) + "/")
	if err != nil {
		return "", fmt.Errorf("failed to parse project directory URL: %w", err)
	}

	opts := []func(*pkl.EvaluatorOptions){
		pkl.PreconfiguredOptions,
		func(o *pkl.EvaluatorOptions) {
			o.OutputFormat = r.format()
		},
	}

	evaluator, err := pkl.NewProjectEvaluator(ctx, projectDir, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create pkl evaluator: %w", err)
	}
	defer evaluator.Close()

	body, err := evaluator.EvaluateOutputText(ctx, pkl.FileSource(abs))
	if err != nil {
		return "", err
	}
	return body, nil
}
